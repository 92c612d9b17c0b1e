package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardResponse resumen operativo del back-office.
type DashboardResponse struct {
	ItemsBelowRebuy []ItemResponse      `json:"items_below_rebuy"`
	ActiveAlarms    map[string]int      `json:"active_alarms"` // tipo → cantidad
	StockValuation  decimal.Decimal     `json:"stock_valuation"`
	LastSpotChecks  []SpotCheckResponse `json:"last_spot_checks"`
	GeneratedAt     time.Time           `json:"generated_at"`
}
