package repository

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// SpotCheckRepository define el puerto de persistencia para el registro de
// auditoría SpotCheck. Solo se crea y se consulta, nunca se modifica.
type SpotCheckRepository interface {
	Create(check *entity.SpotCheck) error
	GetByID(id string) (*entity.SpotCheck, error)
	// List filtra por ubicación; cadena vacía = todas.
	List(location string, limit, offset int) ([]*entity.SpotCheck, error)
	// LastByLocation devuelve el spot check más reciente de cada ubicación.
	LastByLocation() ([]*entity.SpotCheck, error)
}
