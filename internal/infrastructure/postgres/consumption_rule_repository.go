package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

var _ repository.ConsumptionRuleRepository = (*ConsumptionRuleRepo)(nil)

// ConsumptionRuleRepo implementación del puerto ConsumptionRuleRepository sobre PostgreSQL.
type ConsumptionRuleRepo struct {
	pool *pgxpool.Pool
}

// NewConsumptionRuleRepository construye el adaptador de persistencia para reglas de consumo.
func NewConsumptionRuleRepository(pool *pgxpool.Pool) *ConsumptionRuleRepo {
	return &ConsumptionRuleRepo{pool: pool}
}

// Create persiste una nueva regla.
func (r *ConsumptionRuleRepo) Create(rule *entity.ConsumptionRule) error {
	query := `
		INSERT INTO consumption_rules (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		rule.ID, rule.Name, rule.Description, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert consumption rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID.
func (r *ConsumptionRuleRepo) GetByID(id string) (*entity.ConsumptionRule, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM consumption_rules WHERE id = $1`
	var rule entity.ConsumptionRule
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&rule.ID, &rule.Name, &rule.Description, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consumption rule: %w", err)
	}
	return &rule, nil
}

// GetByIDs obtiene las reglas cuyos IDs están en la lista.
func (r *ConsumptionRuleRepo) GetByIDs(ids []string) ([]*entity.ConsumptionRule, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM consumption_rules WHERE id = ANY($1)`
	return r.list(query, ids)
}

// List lista reglas con paginación.
func (r *ConsumptionRuleRepo) List(limit, offset int) ([]*entity.ConsumptionRule, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM consumption_rules ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Update actualiza una regla existente.
func (r *ConsumptionRuleRepo) Update(rule *entity.ConsumptionRule) error {
	query := `
		UPDATE consumption_rules SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		rule.ID, rule.Name, rule.Description, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update consumption rule: %w", err)
	}
	return nil
}

// Delete elimina una regla por ID.
func (r *ConsumptionRuleRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM consumption_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete consumption rule: %w", err)
	}
	return nil
}

func (r *ConsumptionRuleRepo) list(query string, args ...any) ([]*entity.ConsumptionRule, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consumption rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ConsumptionRule
	for rows.Next() {
		var rule entity.ConsumptionRule
		if err := rows.Scan(&rule.ID, &rule.Name, &rule.Description, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan consumption rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}
