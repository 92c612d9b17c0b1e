package repository

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// ItemRuleRepository define el puerto de persistencia para las asignaciones
// ítem + tipo de propiedad → regla de consumo.
type ItemRuleRepository interface {
	// Upsert inserta la asignación o, si ya existe una para el par
	// (ItemName, PropertyType), la reemplaza.
	Upsert(rule *entity.ItemRule) error
	// ListByLocation devuelve las asignaciones de los ítems de una ubicación.
	ListByLocation(location string) ([]*entity.ItemRule, error)
	List(limit, offset int) ([]*entity.ItemRule, error)
	Delete(id string) error
}
