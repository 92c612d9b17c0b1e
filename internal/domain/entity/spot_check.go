package entity

import "time"

// SpotCheck registro de auditoría inmutable: se crea exactamente uno por cada
// ejecución completada de reconciliación, haya o no fallos parciales por ítem.
type SpotCheck struct {
	ID            string
	Location      string
	Timestamp     time.Time
	OperatorID    string
	OperatorName  string
	ItemsUpdated  int // ítems persistidos con éxito en la ejecución
	AlarmsCreated int // alarmas emitidas (Reorder + Consistency)
}
