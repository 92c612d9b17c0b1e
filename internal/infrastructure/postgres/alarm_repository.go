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

var _ repository.AlarmRepository = (*AlarmRepo)(nil)

// AlarmRepo implementación del puerto AlarmRepository sobre PostgreSQL.
type AlarmRepo struct {
	pool *pgxpool.Pool
}

// NewAlarmRepository construye el adaptador de persistencia para alarmas.
func NewAlarmRepository(pool *pgxpool.Pool) *AlarmRepo {
	return &AlarmRepo{pool: pool}
}

// Create persiste una nueva alarma.
func (r *AlarmRepo) Create(alarm *entity.Alarm) error {
	query := `
		INSERT INTO alarms (id, name, description, type, status, action_log, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		alarm.ID, alarm.Name, alarm.Description, alarm.Type, alarm.Status,
		alarm.ActionLog, alarm.CreatedAt, alarm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alarm: %w", err)
	}
	return nil
}

// GetByID obtiene una alarma por ID.
func (r *AlarmRepo) GetByID(id string) (*entity.Alarm, error) {
	query := `
		SELECT id, name, description, type, status, action_log, created_at, updated_at
		FROM alarms WHERE id = $1`
	var a entity.Alarm
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Description, &a.Type, &a.Status, &a.ActionLog, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alarm: %w", err)
	}
	return &a, nil
}

// List lista alarmas filtrando por estado y/o tipo (vacío = sin filtro).
func (r *AlarmRepo) List(status entity.AlarmStatus, alarmType entity.AlarmType, limit, offset int) ([]*entity.Alarm, error) {
	query := `
		SELECT id, name, description, type, status, action_log, created_at, updated_at
		FROM alarms
		WHERE ($1 = '' OR status = $1) AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(context.Background(), query, string(status), string(alarmType), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}
	defer rows.Close()
	var list []*entity.Alarm
	for rows.Next() {
		var a entity.Alarm
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Type, &a.Status, &a.ActionLog, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan alarm: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountActiveByType cuenta alarmas activas agrupadas por tipo.
func (r *AlarmRepo) CountActiveByType() (map[entity.AlarmType]int, error) {
	query := `SELECT type, COUNT(*) FROM alarms WHERE status = 'Active' GROUP BY type`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("count alarms: %w", err)
	}
	defer rows.Close()
	counts := make(map[entity.AlarmType]int)
	for rows.Next() {
		var t entity.AlarmType
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scan alarm count: %w", err)
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

// Update actualiza estado y bitácora de una alarma.
func (r *AlarmRepo) Update(alarm *entity.Alarm) error {
	query := `
		UPDATE alarms SET status = $2, action_log = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		alarm.ID, alarm.Status, alarm.ActionLog, alarm.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update alarm: %w", err)
	}
	return nil
}
