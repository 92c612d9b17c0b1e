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

var _ repository.SpotCheckRepository = (*SpotCheckRepo)(nil)

// SpotCheckRepo implementación del puerto SpotCheckRepository sobre PostgreSQL.
// Los registros son inmutables: solo INSERT y SELECT.
type SpotCheckRepo struct {
	pool *pgxpool.Pool
}

// NewSpotCheckRepository construye el adaptador de persistencia para la auditoría.
func NewSpotCheckRepository(pool *pgxpool.Pool) *SpotCheckRepo {
	return &SpotCheckRepo{pool: pool}
}

const spotCheckColumns = `id, location, ts, operator_id, operator_name, items_updated, alarms_created`

// Create persiste el registro de auditoría de una ejecución completada.
func (r *SpotCheckRepo) Create(check *entity.SpotCheck) error {
	query := `
		INSERT INTO spot_checks (` + spotCheckColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		check.ID, check.Location, check.Timestamp, check.OperatorID,
		check.OperatorName, check.ItemsUpdated, check.AlarmsCreated,
	)
	if err != nil {
		return fmt.Errorf("insert spot check: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *SpotCheckRepo) GetByID(id string) (*entity.SpotCheck, error) {
	query := `SELECT ` + spotCheckColumns + ` FROM spot_checks WHERE id = $1`
	var c entity.SpotCheck
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Location, &c.Timestamp, &c.OperatorID, &c.OperatorName,
		&c.ItemsUpdated, &c.AlarmsCreated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spot check: %w", err)
	}
	return &c, nil
}

// List lista registros, opcionalmente por ubicación, del más reciente al más antiguo.
func (r *SpotCheckRepo) List(location string, limit, offset int) ([]*entity.SpotCheck, error) {
	query := `
		SELECT ` + spotCheckColumns + ` FROM spot_checks
		WHERE ($1 = '' OR location = $1)
		ORDER BY ts DESC LIMIT $2 OFFSET $3`
	return r.list(query, location, limit, offset)
}

// LastByLocation devuelve el spot check más reciente de cada ubicación.
func (r *SpotCheckRepo) LastByLocation() ([]*entity.SpotCheck, error) {
	query := `
		SELECT DISTINCT ON (location) ` + spotCheckColumns + `
		FROM spot_checks ORDER BY location, ts DESC`
	return r.list(query)
}

func (r *SpotCheckRepo) list(query string, args ...any) ([]*entity.SpotCheck, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spot checks: %w", err)
	}
	defer rows.Close()
	var list []*entity.SpotCheck
	for rows.Next() {
		var c entity.SpotCheck
		if err := rows.Scan(
			&c.ID, &c.Location, &c.Timestamp, &c.OperatorID, &c.OperatorName,
			&c.ItemsUpdated, &c.AlarmsCreated,
		); err != nil {
			return nil, fmt.Errorf("scan spot check: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
