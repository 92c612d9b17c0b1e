package spotcheck

import (
	"context"
	"time"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

// BookingSource puerto al API externo de reservas. La llamada es síncrona y
// bloqueante: sin retry, sin backoff ni timeout propio; o devuelve reservas
// usables o la ejecución se detiene en la etapa de fetching.
type BookingSource interface {
	FetchBookings(ctx context.Context, from, to time.Time) ([]entity.Booking, error)
}

// ReportPDFGenerator puerto para la representación PDF de un spot check.
type ReportPDFGenerator interface {
	GenerateSpotCheckPDF(ctx context.Context, check *entity.SpotCheck, items []*entity.InventoryItem) ([]byte, error)
}
