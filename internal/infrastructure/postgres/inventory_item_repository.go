package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL.
type InventoryItemRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryItemRepository construye el adaptador de persistencia para amenidades.
func NewInventoryItemRepository(pool *pgxpool.Pool) *InventoryItemRepo {
	return &InventoryItemRepo{pool: pool}
}

const itemColumns = `id, name, location, quantity, rebuy_quantity, tolerance, status, unit_price, created_at, updated_at`

// Create persiste una nueva amenidad. (name, location) es único.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Location, item.Quantity, item.RebuyQuantity,
		item.Tolerance, item.Status, item.UnitPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene una amenidad por ID.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get inventory item")
}

// GetByLocationAndName obtiene una amenidad por su clave natural.
func (r *InventoryItemRepo) GetByLocationAndName(location, name string) (*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE location = $1 AND name = $2`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, location, name), "get inventory item by name")
}

// ListByLocation lista las amenidades de una ubicación.
func (r *InventoryItemRepo) ListByLocation(location string) ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE location = $1 ORDER BY name`
	return r.list(query, location)
}

// ListAll lista todas las amenidades.
func (r *InventoryItemRepo) ListAll() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items ORDER BY location, name`
	return r.list(query)
}

// ListBelowRebuy lista las amenidades con cantidad bajo su umbral de recompra.
func (r *InventoryItemRepo) ListBelowRebuy() ([]*entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory_items WHERE quantity < rebuy_quantity ORDER BY location, name`
	return r.list(query)
}

// Update actualiza la amenidad completa. Último write gana: la reconciliación
// no usa bloqueo ni chequeo optimista sobre esta tabla.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, quantity = $3, rebuy_quantity = $4, tolerance = $5,
		    status = $6, unit_price = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Quantity, item.RebuyQuantity, item.Tolerance,
		item.Status, item.UnitPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una amenidad por ID.
func (r *InventoryItemRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

func (r *InventoryItemRepo) scanOne(row pgx.Row, op string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.Name, &it.Location, &it.Quantity, &it.RebuyQuantity,
		&it.Tolerance, &it.Status, &it.UnitPrice, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &it, nil
}

func (r *InventoryItemRepo) list(query string, args ...any) ([]*entity.InventoryItem, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Location, &it.Quantity, &it.RebuyQuantity,
			&it.Tolerance, &it.Status, &it.UnitPrice, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
