package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

var _ repository.ItemRuleRepository = (*ItemRuleRepo)(nil)

// ItemRuleRepo implementación del puerto ItemRuleRepository sobre PostgreSQL.
type ItemRuleRepo struct {
	pool *pgxpool.Pool
}

// NewItemRuleRepository construye el adaptador de persistencia para asignaciones de reglas.
func NewItemRuleRepository(pool *pgxpool.Pool) *ItemRuleRepo {
	return &ItemRuleRepo{pool: pool}
}

// Upsert inserta la asignación o reemplaza la existente para el par
// (item_name, property_type). El constraint único de la tabla respalda el
// invariante de a-lo-sumo-una-regla-por-par.
func (r *ItemRuleRepo) Upsert(rule *entity.ItemRule) error {
	query := `
		INSERT INTO item_rules (id, item_name, property_type, rule_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (item_name, property_type)
		DO UPDATE SET rule_id = EXCLUDED.rule_id, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		rule.ID, rule.ItemName, rule.PropertyType, rule.RuleID, rule.CreatedAt, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert item rule: %w", err)
	}
	return nil
}

// ListByLocation lista las asignaciones de los ítems de una ubicación
// (join por nombre contra inventory_items).
func (r *ItemRuleRepo) ListByLocation(location string) ([]*entity.ItemRule, error) {
	query := `
		SELECT ir.id, ir.item_name, ir.property_type, ir.rule_id, ir.created_at, ir.updated_at
		FROM item_rules ir
		JOIN inventory_items i ON i.name = ir.item_name
		WHERE i.location = $1
		ORDER BY ir.item_name, ir.property_type`
	return r.list(query, location)
}

// List lista asignaciones con paginación.
func (r *ItemRuleRepo) List(limit, offset int) ([]*entity.ItemRule, error) {
	query := `
		SELECT id, item_name, property_type, rule_id, created_at, updated_at
		FROM item_rules ORDER BY item_name, property_type LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// Delete elimina una asignación por ID.
func (r *ItemRuleRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM item_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item rule: %w", err)
	}
	return nil
}

func (r *ItemRuleRepo) list(query string, args ...any) ([]*entity.ItemRule, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list item rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ItemRule
	for rows.Next() {
		var ir entity.ItemRule
		if err := rows.Scan(&ir.ID, &ir.ItemName, &ir.PropertyType, &ir.RuleID, &ir.CreatedAt, &ir.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item rule: %w", err)
		}
		list = append(list, &ir)
	}
	return list, rows.Err()
}
