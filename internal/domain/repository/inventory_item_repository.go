package repository

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetByLocationAndName(location, name string) (*entity.InventoryItem, error)
	ListByLocation(location string) ([]*entity.InventoryItem, error)
	ListAll() ([]*entity.InventoryItem, error)
	// ListBelowRebuy devuelve los ítems cuya cantidad está bajo su umbral de
	// recompra (todas las ubicaciones), para el dashboard.
	ListBelowRebuy() ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
}
