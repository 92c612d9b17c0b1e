package entity

import "time"

// ConsumptionRule regla de consumo por reserva. Name es el texto operable
// ("2 per guest per night", "1 per stay") que interpreta el evaluador;
// Description es informativa y no participa del cálculo.
type ConsumptionRule struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
