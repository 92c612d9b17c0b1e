package spotcheck

import (
	"context"

	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

// ReportUseCase genera la representación PDF de un spot check: el registro de
// auditoría más el inventario actual de su ubicación.
type ReportUseCase struct {
	spotCheckRepo repository.SpotCheckRepository
	itemRepo      repository.InventoryItemRepository
	generator     ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso del reporte PDF.
func NewReportUseCase(
	spotCheckRepo repository.SpotCheckRepository,
	itemRepo repository.InventoryItemRepository,
	generator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{spotCheckRepo: spotCheckRepo, itemRepo: itemRepo, generator: generator}
}

// GeneratePDF devuelve los bytes del PDF del spot check indicado.
func (uc *ReportUseCase) GeneratePDF(ctx context.Context, spotCheckID string) ([]byte, error) {
	check, err := uc.spotCheckRepo.GetByID(spotCheckID)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByLocation(check.Location)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateSpotCheckPDF(ctx, check, items)
}
