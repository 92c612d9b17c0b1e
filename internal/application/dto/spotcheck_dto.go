package dto

import "time"

// StartRunRequest inicia una ejecución de spot check. Las fechas van en
// formato 2006-01-02 y delimitan las reservas a considerar.
type StartRunRequest struct {
	Location string `json:"location"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// RunItemPreview predicción por ítem antes del conteo físico.
// SuggestedVerified es la cantidad esperada: el valor por defecto que el
// operador confirma o sobreescribe con lo que contó.
type RunItemPreview struct {
	ItemName            string `json:"item_name"`
	CurrentQuantity     int    `json:"current_quantity"`
	ExpectedConsumption int    `json:"expected_consumption"`
	ExpectedQuantity    int    `json:"expected_quantity"`
	SuggestedVerified   int    `json:"suggested_verified"`
	RebuyQuantity       int    `json:"rebuy_quantity"`
	Tolerance           int    `json:"tolerance"`
}

// RunResponse estado de una ejecución en curso.
type RunResponse struct {
	RunID    string           `json:"run_id"`
	Location string           `json:"location"`
	State    string           `json:"state"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Bookings int              `json:"bookings"`
	Items    []RunItemPreview `json:"items"`
}

// VerifiedCount conteo físico de un ítem ingresado por el operador.
type VerifiedCount struct {
	ItemName string `json:"item_name"`
	Verified int    `json:"verified"`
}

// ReconcileRequest conteos verificados para cerrar la ejecución. Ítems sin
// conteo explícito usan la cantidad esperada como valor por defecto.
type ReconcileRequest struct {
	Counts []VerifiedCount `json:"counts"`
}

// ItemOutcome resultado por ítem de la reconciliación. Updated=false con
// Error poblado significa que ese ítem falló sin abortar al resto.
type ItemOutcome struct {
	ItemName         string `json:"item_name"`
	Updated          bool   `json:"updated"`
	Error            string `json:"error,omitempty"`
	NewStatus        string `json:"new_status,omitempty"`
	ExpectedQuantity int    `json:"expected_quantity"`
	VerifiedQuantity int    `json:"verified_quantity"`
	ReorderAlarm     bool   `json:"reorder_alarm"`
	ConsistencyAlarm bool   `json:"consistency_alarm"`
	MissingQuantity  int    `json:"missing_quantity,omitempty"`
}

// ReconcileReport resumen final de la ejecución: distingue ítems intentados
// de ítems actualizados para que un fallo parcial nunca quede oculto.
type ReconcileReport struct {
	RunID          string        `json:"run_id"`
	Location       string        `json:"location"`
	ItemsAttempted int           `json:"items_attempted"`
	ItemsUpdated   int           `json:"items_updated"`
	AlarmsCreated  int           `json:"alarms_created"`
	SpotCheckID    string        `json:"spot_check_id,omitempty"`
	Results        []ItemOutcome `json:"results"`
}

// SpotCheckResponse registro de auditoría para respuestas HTTP.
type SpotCheckResponse struct {
	ID            string    `json:"id"`
	Location      string    `json:"location"`
	Timestamp     time.Time `json:"timestamp"`
	OperatorName  string    `json:"operator_name"`
	ItemsUpdated  int       `json:"items_updated"`
	AlarmsCreated int       `json:"alarms_created"`
}
