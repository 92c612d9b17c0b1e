package dto

import "github.com/shopspring/decimal"

// CreateItemRequest alta de una amenidad en una ubicación.
type CreateItemRequest struct {
	Name          string           `json:"name"`
	Location      string           `json:"location"`
	Quantity      int              `json:"quantity"`
	RebuyQuantity int              `json:"rebuy_quantity"`
	Tolerance     int              `json:"tolerance"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
}

// UpdateItemRequest actualización de una amenidad. El estado no se actualiza
// por aquí: lo fija la reconciliación.
type UpdateItemRequest struct {
	Name          string           `json:"name"`
	Quantity      int              `json:"quantity"`
	RebuyQuantity int              `json:"rebuy_quantity"`
	Tolerance     int              `json:"tolerance"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
}

// ItemResponse amenidad para respuestas HTTP.
type ItemResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Location      string           `json:"location"`
	Quantity      int              `json:"quantity"`
	RebuyQuantity int              `json:"rebuy_quantity"`
	Tolerance     int              `json:"tolerance"`
	Status        string           `json:"status"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
}
