package entity

import "time"

// AlarmType clasificación de la alarma.
type AlarmType string

const (
	AlarmReorder     AlarmType = "Reorder"     // stock verificado por debajo del umbral de recompra
	AlarmConsistency AlarmType = "Consistency" // conteo físico no cuadra con la predicción del modelo
)

// AlarmStatus ciclo de vida de la alarma.
type AlarmStatus string

const (
	AlarmActive    AlarmStatus = "Active"
	AlarmCompleted AlarmStatus = "Completed"
	AlarmSnoozed   AlarmStatus = "Snoozed"
)

// Alarm alarma operativa generada por el spot check (o manualmente).
// ActionLog acumula texto libre de quién la gestionó y cuándo.
type Alarm struct {
	ID          string
	Name        string
	Description string
	Type        AlarmType
	Status      AlarmStatus
	ActionLog   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
