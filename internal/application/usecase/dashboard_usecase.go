package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen operativo: ítems bajo umbral de recompra,
// conteo de alarmas activas por tipo, valoración del stock y el último spot
// check de cada ubicación.
type DashboardUseCase struct {
	itemRepo      repository.InventoryItemRepository
	alarmRepo     repository.AlarmRepository
	spotCheckRepo repository.SpotCheckRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(
	itemRepo repository.InventoryItemRepository,
	alarmRepo repository.AlarmRepository,
	spotCheckRepo repository.SpotCheckRepository,
) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, alarmRepo: alarmRepo, spotCheckRepo: spotCheckRepo}
}

// Summary construye el dashboard. La valoración suma cantidad × precio
// unitario de los ítems con precio; los ítems sin precio no aportan.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	below, err := uc.itemRepo.ListBelowRebuy()
	if err != nil {
		return nil, err
	}

	activeByType, err := uc.alarmRepo.CountActiveByType()
	if err != nil {
		return nil, err
	}
	activeAlarms := make(map[string]int, len(activeByType))
	for t, n := range activeByType {
		activeAlarms[string(t)] = n
	}

	lastChecks, err := uc.spotCheckRepo.LastByLocation()
	if err != nil {
		return nil, err
	}

	all, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	valuation := decimal.Zero
	for _, item := range all {
		if item.UnitPrice != nil {
			valuation = valuation.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	resp := &dto.DashboardResponse{
		ItemsBelowRebuy: make([]dto.ItemResponse, 0, len(below)),
		ActiveAlarms:    activeAlarms,
		StockValuation:  valuation,
		LastSpotChecks:  make([]dto.SpotCheckResponse, 0, len(lastChecks)),
		GeneratedAt:     time.Now(),
	}
	for _, item := range below {
		resp.ItemsBelowRebuy = append(resp.ItemsBelowRebuy, toItemResponse(item))
	}
	for _, check := range lastChecks {
		resp.LastSpotChecks = append(resp.LastSpotChecks, dto.SpotCheckResponse{
			ID:            check.ID,
			Location:      check.Location,
			Timestamp:     check.Timestamp,
			OperatorName:  check.OperatorName,
			ItemsUpdated:  check.ItemsUpdated,
			AlarmsCreated: check.AlarmsCreated,
		})
	}
	return resp, nil
}

func toItemResponse(item *entity.InventoryItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Location:      item.Location,
		Quantity:      item.Quantity,
		RebuyQuantity: item.RebuyQuantity,
		Tolerance:     item.Tolerance,
		Status:        string(item.Status),
		UnitPrice:     item.UnitPrice,
	}
}
