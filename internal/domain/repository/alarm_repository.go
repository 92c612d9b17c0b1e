package repository

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// AlarmRepository define el puerto de persistencia para Alarm (DIP).
type AlarmRepository interface {
	Create(alarm *entity.Alarm) error
	GetByID(id string) (*entity.Alarm, error)
	// List filtra por estado y/o tipo; cadena vacía = sin filtro.
	List(status entity.AlarmStatus, alarmType entity.AlarmType, limit, offset int) ([]*entity.Alarm, error)
	CountActiveByType() (map[entity.AlarmType]int, error)
	Update(alarm *entity.Alarm) error
}
