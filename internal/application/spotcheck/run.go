package spotcheck

import (
	"time"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

// RunState etapa de una ejecución de reconciliación. El workflow avanza en un
// solo sentido; no hay reanudación: una ejecución interrumpida se repite desde
// el principio y recalcula todo de forma independiente.
type RunState string

const (
	StateCollectingInputs       RunState = "collecting_inputs"
	StateFetchingBookings       RunState = "fetching_bookings"
	StateComputingConsumption   RunState = "computing_consumption"
	StateAwaitingVerifiedCounts RunState = "awaiting_verified_counts"
	StateReconciling            RunState = "reconciling"
	StateCompleted              RunState = "completed"
)

// Run conjunto de trabajo en memoria de una ejecución: reservas, consumo
// agregado y cantidades esperadas. Pertenece en exclusiva a su ejecución y se
// descarta al completarla; nada sobrevive entre ejecuciones ni reinicios.
type Run struct {
	ID       string
	Location string
	From     time.Time
	To       time.Time
	State    RunState

	Bookings    []entity.Booking
	Items       []*entity.InventoryItem
	Consumption map[string]int // nombre de ítem → consumo esperado del rango
	Expected    map[string]int // nombre de ítem → cantidad restante esperada

	CreatedAt time.Time
}
