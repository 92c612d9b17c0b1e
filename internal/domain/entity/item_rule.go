package entity

import "time"

// ItemRule asocia una amenidad (por nombre) y un tipo de propiedad con una
// regla de consumo. El par (ItemName, PropertyType) es único: reasignar una
// regla para el mismo par reemplaza la anterior, nunca se acumulan.
type ItemRule struct {
	ID           string
	ItemName     string
	PropertyType PropertyType
	RuleID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
