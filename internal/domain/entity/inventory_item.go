package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus estado de stock de una amenidad. Siempre es exactamente uno de
// los tres valores y se recalcula en cada spot check, nunca queda obsoleto.
type ItemStatus string

const (
	StatusOK       ItemStatus = "OK"
	StatusLowStock ItemStatus = "Low Stock"
	StatusReorder  ItemStatus = "Reorder"
)

// InventoryItem amenidad de una ubicación (jabón, agua, café...).
// Name es único dentro de la ubicación. Las cantidades son enteras;
// UnitPrice es opcional y solo se usa para la valoración del dashboard.
type InventoryItem struct {
	ID            string
	Name          string
	Location      string
	Quantity      int // cantidad actual en sistema
	RebuyQuantity int // umbral de recompra
	Tolerance     int // varianza permitida entre predicción y conteo físico (>= 0)
	Status        ItemStatus
	UnitPrice     *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
