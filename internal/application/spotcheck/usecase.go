package spotcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/repository"
	engine "github.com/jhoicas/Amenidades-api/internal/domain/spotcheck"
	"github.com/jhoicas/Amenidades-api/pkg/logger"
)

// UseCase orquesta una ejecución completa de reconciliación de consumo:
// recolecta entradas, trae reservas, calcula consumo y cantidades esperadas,
// espera los conteos del operador y cierra la ejecución emitiendo los efectos
// (ítems actualizados, alarmas, registro de auditoría).
//
// Cada ejecución avanza en un único hilo lógico: ninguna etapa se solapa con
// otra y los ítems se procesan secuencialmente. El mutex existe solo porque
// Fiber atiende peticiones concurrentes sobre el registro de ejecuciones.
type UseCase struct {
	itemRepo      repository.InventoryItemRepository
	ruleRepo      repository.ConsumptionRuleRepository
	itemRuleRepo  repository.ItemRuleRepository
	alarmRepo     repository.AlarmRepository
	spotCheckRepo repository.SpotCheckRepository
	bookings      BookingSource
	log           *logger.Logger

	mu   sync.Mutex
	runs map[string]*Run
}

// NewUseCase construye el orquestador de spot checks.
func NewUseCase(
	itemRepo repository.InventoryItemRepository,
	ruleRepo repository.ConsumptionRuleRepository,
	itemRuleRepo repository.ItemRuleRepository,
	alarmRepo repository.AlarmRepository,
	spotCheckRepo repository.SpotCheckRepository,
	bookings BookingSource,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		itemRepo:      itemRepo,
		ruleRepo:      ruleRepo,
		itemRuleRepo:  itemRuleRepo,
		alarmRepo:     alarmRepo,
		spotCheckRepo: spotCheckRepo,
		bookings:      bookings,
		log:           log,
		runs:          make(map[string]*Run),
	}
}

// StartInput entradas de la etapa inicial del workflow.
type StartInput struct {
	Location string
	From     time.Time
	To       time.Time
}

// Operator identidad del operador que cierra la ejecución; queda grabada en
// el registro SpotCheck.
type Operator struct {
	ID   string
	Name string
}

// Start valida las entradas, trae las reservas del rango y calcula el consumo
// y las cantidades esperadas por ítem de la ubicación. Si todo sale bien la
// ejecución queda en awaiting_verified_counts esperando los conteos físicos.
//
// Errores de entrada (ubicación o rango faltante, cero reglas configuradas)
// impiden que la ejecución arranque. Un fallo del API de reservas es fatal
// para la etapa: se reporta y no se continúa con datos parciales.
func (uc *UseCase) Start(ctx context.Context, in StartInput) (*Run, error) {
	if in.Location == "" || in.From.IsZero() || in.To.IsZero() || in.To.Before(in.From) {
		return nil, domain.ErrInvalidInput
	}

	run := &Run{
		ID:        uuid.New().String(),
		Location:  in.Location,
		From:      in.From,
		To:        in.To,
		State:     StateCollectingInputs,
		CreatedAt: time.Now(),
	}

	items, err := uc.itemRepo.ListByLocation(in.Location)
	if err != nil {
		return nil, fmt.Errorf("listar ítems de %q: %w", in.Location, err)
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}

	assignments, err := uc.itemRuleRepo.ListByLocation(in.Location)
	if err != nil {
		return nil, fmt.Errorf("listar reglas de %q: %w", in.Location, err)
	}
	if len(assignments) == 0 {
		return nil, domain.ErrNoRulesConfigured
	}

	ruleIDs := make([]string, 0, len(assignments))
	seen := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if !seen[a.RuleID] {
			seen[a.RuleID] = true
			ruleIDs = append(ruleIDs, a.RuleID)
		}
	}
	rules, err := uc.ruleRepo.GetByIDs(ruleIDs)
	if err != nil {
		return nil, fmt.Errorf("cargar reglas de consumo: %w", err)
	}

	run.State = StateFetchingBookings
	bookings, err := uc.bookings.FetchBookings(ctx, in.From, in.To)
	if err != nil {
		return nil, fmt.Errorf("%w (etapa %s): %v", domain.ErrBookingSource, StateFetchingBookings, err)
	}
	run.Bookings = bookings

	run.State = StateComputingConsumption
	idx := engine.BuildRuleIndex(assignments, rules)
	run.Items = items
	run.Consumption = engine.ExpectedConsumption(bookings, items, idx)
	run.Expected = make(map[string]int, len(items))
	for _, item := range items {
		run.Expected[item.Name] = engine.ExpectedQuantity(item.Quantity, run.Consumption[item.Name])
	}

	run.State = StateAwaitingVerifiedCounts
	uc.mu.Lock()
	uc.runs[run.ID] = run
	uc.mu.Unlock()

	uc.log.Info().
		Str("run_id", run.ID).
		Str("location", run.Location).
		Int("bookings", len(bookings)).
		Int("items", len(items)).
		Msg("spot check listo para conteo físico")

	return run, nil
}

// Get devuelve una ejecución en curso por ID.
func (uc *UseCase) Get(runID string) (*Run, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	run, ok := uc.runs[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

// Reconcile cierra la ejecución con los conteos verificados del operador.
// Ítems sin conteo explícito usan la cantidad esperada como valor por defecto.
//
// El procesamiento es secuencial y tolerante a fallos parciales: el fallo de
// un ítem se registra y se cuenta, nunca aborta a los demás. No hay
// transacción que abarque la ejecución; es un lote best-effort y el reporte
// distingue ítems intentados de actualizados para no ocultar fallos
// silenciosos. Al final se crea exactamente un registro SpotCheck y la
// ejecución se descarta del registro en memoria.
func (uc *UseCase) Reconcile(ctx context.Context, runID string, operator Operator, counts []dto.VerifiedCount) (*dto.ReconcileReport, error) {
	uc.mu.Lock()
	run, ok := uc.runs[runID]
	if !ok {
		uc.mu.Unlock()
		return nil, domain.ErrRunNotFound
	}
	if run.State != StateAwaitingVerifiedCounts {
		uc.mu.Unlock()
		return nil, domain.ErrConflict
	}
	run.State = StateReconciling
	uc.mu.Unlock()

	verified := make(map[string]int, len(run.Items))
	for _, item := range run.Items {
		verified[item.Name] = run.Expected[item.Name]
	}
	for _, c := range counts {
		if _, ok := verified[c.ItemName]; !ok {
			continue // conteo de un ítem ajeno a la ubicación: se ignora
		}
		qty := c.Verified
		if qty < 0 {
			qty = 0
		}
		verified[c.ItemName] = qty
	}

	now := time.Now()
	report := &dto.ReconcileReport{
		RunID:          run.ID,
		Location:       run.Location,
		ItemsAttempted: len(run.Items),
	}

	for _, item := range run.Items {
		outcome := uc.reconcileItem(item, run.Expected[item.Name], verified[item.Name], now)
		if outcome.Updated {
			report.ItemsUpdated++
		}
		if outcome.ReorderAlarm {
			report.AlarmsCreated++
		}
		if outcome.ConsistencyAlarm {
			report.AlarmsCreated++
		}
		report.Results = append(report.Results, outcome)
	}

	check := &entity.SpotCheck{
		ID:            uuid.New().String(),
		Location:      run.Location,
		Timestamp:     now,
		OperatorID:    operator.ID,
		OperatorName:  operator.Name,
		ItemsUpdated:  report.ItemsUpdated,
		AlarmsCreated: report.AlarmsCreated,
	}
	if err := uc.spotCheckRepo.Create(check); err != nil {
		// El lote ya corrió; se reporta con SpotCheckID vacío en vez de
		// fingir que la auditoría quedó grabada.
		uc.log.Error().Err(err).Str("run_id", run.ID).Msg("crear registro de auditoría de spot check")
	} else {
		report.SpotCheckID = check.ID
	}

	run.State = StateCompleted
	uc.mu.Lock()
	delete(uc.runs, runID)
	uc.mu.Unlock()

	uc.log.Info().
		Str("run_id", run.ID).
		Str("location", run.Location).
		Int("items_attempted", report.ItemsAttempted).
		Int("items_updated", report.ItemsUpdated).
		Int("alarms_created", report.AlarmsCreated).
		Msg("spot check completado")

	return report, nil
}

// reconcileItem aplica los pasos 1–4 de la reconciliación a un ítem. Cada
// sub-paso falla de forma aislada: un error se loguea y queda en el outcome,
// pero los sub-pasos restantes del ítem se intentan igual.
func (uc *UseCase) reconcileItem(item *entity.InventoryItem, expected, verifiedQty int, now time.Time) dto.ItemOutcome {
	status := engine.ClassifyStatus(verifiedQty, item.RebuyQuantity)

	outcome := dto.ItemOutcome{
		ItemName:         item.Name,
		NewStatus:        string(status),
		ExpectedQuantity: expected,
		VerifiedQuantity: verifiedQty,
	}

	if status == entity.StatusReorder {
		alarm := &entity.Alarm{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Reorder %s", item.Name),
			Description: fmt.Sprintf("Quedan %d unidades de %s en %s", verifiedQty, item.Name, item.Location),
			Type:        entity.AlarmReorder,
			Status:      entity.AlarmActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.alarmRepo.Create(alarm); err != nil {
			uc.log.Error().Err(err).Str("item", item.Name).Msg("crear alarma de recompra")
			outcome.Error = appendError(outcome.Error, err)
		} else {
			outcome.ReorderAlarm = true
		}
	}

	updated := *item
	updated.Quantity = verifiedQty
	updated.Status = status
	updated.UpdatedAt = now
	if err := uc.itemRepo.Update(&updated); err != nil {
		uc.log.Error().Err(err).Str("item", item.Name).Msg("actualizar ítem en reconciliación")
		outcome.Error = appendError(outcome.Error, err)
	} else {
		outcome.Updated = true
	}

	// Señal ortogonal a la clasificación: puede dispararse junto con
	// cualquiera de las tres bandas, incluida Reorder en el mismo ítem.
	if missing, fired := engine.ConsistencyGap(expected, item.Tolerance, verifiedQty); fired {
		outcome.MissingQuantity = missing
		alarm := &entity.Alarm{
			ID:          uuid.New().String(),
			Name:        "Consistency error",
			Description: fmt.Sprintf("Faltan %d unidades de %s respecto a la predicción del modelo", missing, item.Name),
			Type:        entity.AlarmConsistency,
			Status:      entity.AlarmActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.alarmRepo.Create(alarm); err != nil {
			uc.log.Error().Err(err).Str("item", item.Name).Msg("crear alarma de consistencia")
			outcome.Error = appendError(outcome.Error, err)
		} else {
			outcome.ConsistencyAlarm = true
		}
	}

	return outcome
}

// History lista los registros de auditoría, opcionalmente por ubicación.
func (uc *UseCase) History(location string, page dto.PageRequest) ([]*entity.SpotCheck, error) {
	page.DefaultPage()
	return uc.spotCheckRepo.List(location, page.Limit, page.Offset)
}

func appendError(existing string, err error) string {
	if existing == "" {
		return err.Error()
	}
	return existing + "; " + err.Error()
}
