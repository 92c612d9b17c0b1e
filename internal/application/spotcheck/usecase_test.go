package spotcheck_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appspotcheck "github.com/jhoicas/Amenidades-api/internal/application/spotcheck"
	"github.com/jhoicas/Amenidades-api/internal/application/dto"
	"github.com/jhoicas/Amenidades-api/internal/domain"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos del orquestador
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items   []*entity.InventoryItem
	updated []*entity.InventoryItem
	failFor map[string]error // nombre de ítem → error al actualizar
}

func (r *fakeItemRepo) Create(*entity.InventoryItem) error { return nil }
func (r *fakeItemRepo) GetByID(string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) GetByLocationAndName(string, string) (*entity.InventoryItem, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListByLocation(location string) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.items {
		if it.Location == location {
			out = append(out, it)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) ListAll() ([]*entity.InventoryItem, error)        { return r.items, nil }
func (r *fakeItemRepo) ListBelowRebuy() ([]*entity.InventoryItem, error) { return nil, nil }
func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	if err, ok := r.failFor[item.Name]; ok {
		return err
	}
	r.updated = append(r.updated, item)
	return nil
}
func (r *fakeItemRepo) Delete(string) error { return nil }

type fakeRuleRepo struct {
	rules []*entity.ConsumptionRule
}

func (r *fakeRuleRepo) Create(*entity.ConsumptionRule) error { return nil }
func (r *fakeRuleRepo) GetByID(string) (*entity.ConsumptionRule, error) {
	return nil, nil
}
func (r *fakeRuleRepo) GetByIDs(ids []string) ([]*entity.ConsumptionRule, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*entity.ConsumptionRule
	for _, rule := range r.rules {
		if wanted[rule.ID] {
			out = append(out, rule)
		}
	}
	return out, nil
}
func (r *fakeRuleRepo) List(int, int) ([]*entity.ConsumptionRule, error) { return r.rules, nil }
func (r *fakeRuleRepo) Update(*entity.ConsumptionRule) error             { return nil }
func (r *fakeRuleRepo) Delete(string) error                              { return nil }

type fakeItemRuleRepo struct {
	assignments []*entity.ItemRule
}

func (r *fakeItemRuleRepo) Upsert(*entity.ItemRule) error { return nil }
func (r *fakeItemRuleRepo) ListByLocation(string) ([]*entity.ItemRule, error) {
	return r.assignments, nil
}
func (r *fakeItemRuleRepo) List(int, int) ([]*entity.ItemRule, error) { return r.assignments, nil }
func (r *fakeItemRuleRepo) Delete(string) error                       { return nil }

type fakeAlarmRepo struct {
	created []*entity.Alarm
	failAll bool
}

func (r *fakeAlarmRepo) Create(alarm *entity.Alarm) error {
	if r.failAll {
		return errors.New("alarm store caído")
	}
	r.created = append(r.created, alarm)
	return nil
}
func (r *fakeAlarmRepo) GetByID(string) (*entity.Alarm, error) { return nil, nil }
func (r *fakeAlarmRepo) List(entity.AlarmStatus, entity.AlarmType, int, int) ([]*entity.Alarm, error) {
	return r.created, nil
}
func (r *fakeAlarmRepo) CountActiveByType() (map[entity.AlarmType]int, error) { return nil, nil }
func (r *fakeAlarmRepo) Update(*entity.Alarm) error                           { return nil }

type fakeSpotCheckRepo struct {
	created []*entity.SpotCheck
	fail    bool
}

func (r *fakeSpotCheckRepo) Create(check *entity.SpotCheck) error {
	if r.fail {
		return errors.New("audit store caído")
	}
	r.created = append(r.created, check)
	return nil
}
func (r *fakeSpotCheckRepo) GetByID(string) (*entity.SpotCheck, error) { return nil, nil }
func (r *fakeSpotCheckRepo) List(string, int, int) ([]*entity.SpotCheck, error) {
	return r.created, nil
}
func (r *fakeSpotCheckRepo) LastByLocation() ([]*entity.SpotCheck, error) { return nil, nil }

type fakeBookingSource struct {
	bookings []entity.Booking
	err      error
}

func (s *fakeBookingSource) FetchBookings(_ context.Context, _, _ time.Time) ([]entity.Booking, error) {
	return s.bookings, s.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture base: "Agua" en casa-centro con la regla "1 per guest per night" y
// una reserva entire_place de 4 huéspedes por 2 noches → consumo esperado 8.
// ──────────────────────────────────────────────────────────────────────────────

const testLocation = "casa-centro"

func baseFixture() (*fakeItemRepo, *fakeRuleRepo, *fakeItemRuleRepo, *fakeAlarmRepo, *fakeSpotCheckRepo, *fakeBookingSource) {
	items := &fakeItemRepo{items: []*entity.InventoryItem{{
		ID: "i1", Name: "Agua", Location: testLocation,
		Quantity: 50, RebuyQuantity: 20, Tolerance: 5, Status: entity.StatusOK,
	}}}
	rules := &fakeRuleRepo{rules: []*entity.ConsumptionRule{{ID: "r1", Name: "1 per guest per night"}}}
	itemRules := &fakeItemRuleRepo{assignments: []*entity.ItemRule{{
		ID: "a1", ItemName: "Agua", PropertyType: entity.PropertyEntirePlace, RuleID: "r1",
	}}}
	alarms := &fakeAlarmRepo{}
	checks := &fakeSpotCheckRepo{}
	bookings := &fakeBookingSource{bookings: []entity.Booking{{
		ID: "b1", Guests: 4, Nights: 2, RoomType: "Entire home/apt",
	}}}
	return items, rules, itemRules, alarms, checks, bookings
}

func newUseCase(items *fakeItemRepo, rules *fakeRuleRepo, itemRules *fakeItemRuleRepo,
	alarms *fakeAlarmRepo, checks *fakeSpotCheckRepo, bookings *fakeBookingSource) *appspotcheck.UseCase {
	return appspotcheck.NewUseCase(items, rules, itemRules, alarms, checks, bookings, logger.Nop())
}

func startInput() appspotcheck.StartInput {
	return appspotcheck.StartInput{
		Location: testLocation,
		From:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Start: validación de entradas y cálculo de predicción
// ──────────────────────────────────────────────────────────────────────────────

func TestStart_EntradasInvalidas(t *testing.T) {
	uc := newUseCase(baseFixture())

	_, err := uc.Start(context.Background(), appspotcheck.StartInput{From: time.Now(), To: time.Now()})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "ubicación faltante")

	_, err = uc.Start(context.Background(), appspotcheck.StartInput{Location: testLocation})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rango de fechas faltante")

	in := startInput()
	in.From, in.To = in.To, in.From
	_, err = uc.Start(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rango invertido")
}

func TestStart_SinReglasConfiguradas(t *testing.T) {
	items, rules, _, alarms, checks, bookings := baseFixture()
	uc := newUseCase(items, rules, &fakeItemRuleRepo{}, alarms, checks, bookings)

	_, err := uc.Start(context.Background(), startInput())
	assert.ErrorIs(t, err, domain.ErrNoRulesConfigured, "cero reglas es error de entrada: la ejecución no arranca")
}

func TestStart_FuenteDeReservasCaida(t *testing.T) {
	items, rules, itemRules, alarms, checks, _ := baseFixture()
	source := &fakeBookingSource{err: errors.New("connection refused")}
	uc := newUseCase(items, rules, itemRules, alarms, checks, source)

	_, err := uc.Start(context.Background(), startInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingSource)
	assert.Contains(t, err.Error(), string(appspotcheck.StateFetchingBookings),
		"el error debe identificar la etapa que falló")
}

func TestStart_CalculaPrediccion(t *testing.T) {
	uc := newUseCase(baseFixture())

	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)
	assert.Equal(t, appspotcheck.StateAwaitingVerifiedCounts, run.State)
	assert.Equal(t, 8, run.Consumption["Agua"], "1 per guest per night × 4 huéspedes × 2 noches")
	assert.Equal(t, 42, run.Expected["Agua"], "50 - 8")

	got, err := uc.Get(run.ID)
	require.NoError(t, err)
	assert.Same(t, run, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconcile: escenarios de referencia de extremo a extremo
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_ConteoVerificadoOK(t *testing.T) {
	items, rules, itemRules, alarms, checks, bookings := baseFixture()
	uc := newUseCase(items, rules, itemRules, alarms, checks, bookings)
	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)

	// Operador cuenta 41: dentro de tolerancia (>= 37) y sobre 20×1.25.
	report, err := uc.Reconcile(context.Background(), run.ID,
		appspotcheck.Operator{ID: "u1", Name: "Joha"},
		[]dto.VerifiedCount{{ItemName: "Agua", Verified: 41}},
	)
	require.NoError(t, err)

	assert.Equal(t, 1, report.ItemsAttempted)
	assert.Equal(t, 1, report.ItemsUpdated)
	assert.Equal(t, 0, report.AlarmsCreated)
	require.Len(t, report.Results, 1)
	assert.Equal(t, string(entity.StatusOK), report.Results[0].NewStatus)
	assert.False(t, report.Results[0].ConsistencyAlarm)

	require.Len(t, items.updated, 1)
	assert.Equal(t, 41, items.updated[0].Quantity, "la cantidad persistida es la verificada")
	assert.Equal(t, entity.StatusOK, items.updated[0].Status)
	assert.Empty(t, alarms.created)

	require.Len(t, checks.created, 1, "exactamente un registro de auditoría")
	assert.Equal(t, "Joha", checks.created[0].OperatorName)
	assert.Equal(t, report.SpotCheckID, checks.created[0].ID)
}

func TestReconcile_ReorderYConsistenciaEnElMismoItem(t *testing.T) {
	items, rules, itemRules, alarms, checks, bookings := baseFixture()
	uc := newUseCase(items, rules, itemRules, alarms, checks, bookings)
	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)

	// Operador cuenta 15: bajo recompra (20) Y bajo el mínimo de consistencia (37).
	report, err := uc.Reconcile(context.Background(), run.ID,
		appspotcheck.Operator{ID: "u1", Name: "Joha"},
		[]dto.VerifiedCount{{ItemName: "Agua", Verified: 15}},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, report.AlarmsCreated, "Reorder y Consistency no se deduplican")
	require.Len(t, report.Results, 1)
	outcome := report.Results[0]
	assert.Equal(t, string(entity.StatusReorder), outcome.NewStatus)
	assert.True(t, outcome.ReorderAlarm)
	assert.True(t, outcome.ConsistencyAlarm)
	assert.Equal(t, 27, outcome.MissingQuantity, "faltante = esperado 42 - verificado 15")

	require.Len(t, alarms.created, 2)
	assert.Equal(t, "Reorder Agua", alarms.created[0].Name)
	assert.Equal(t, entity.AlarmReorder, alarms.created[0].Type)
	assert.Equal(t, entity.AlarmActive, alarms.created[0].Status)
	assert.Equal(t, "Consistency error", alarms.created[1].Name)
	assert.Equal(t, entity.AlarmConsistency, alarms.created[1].Type)
	assert.Contains(t, alarms.created[1].Description, "Agua")
	assert.Contains(t, alarms.created[1].Description, "27")

	require.Len(t, checks.created, 1)
}

func TestReconcile_ConteoPorDefectoEsElEsperado(t *testing.T) {
	items, rules, itemRules, alarms, checks, bookings := baseFixture()
	uc := newUseCase(items, rules, itemRules, alarms, checks, bookings)
	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)

	// Sin conteos explícitos: el valor por defecto es la predicción (42).
	report, err := uc.Reconcile(context.Background(), run.ID,
		appspotcheck.Operator{ID: "u1", Name: "Joha"}, nil)
	require.NoError(t, err)

	require.Len(t, items.updated, 1)
	assert.Equal(t, 42, items.updated[0].Quantity)
	assert.Equal(t, 0, report.AlarmsCreated, "confirmar la predicción nunca dispara consistencia")
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de fallos por ítem
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_FalloDeUnItemNoAbortaElResto(t *testing.T) {
	items, rules, itemRules, alarms, checks, bookings := baseFixture()
	items.items = nil
	itemRules.assignments = nil
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("Item-%02d", i)
		items.items = append(items.items, &entity.InventoryItem{
			ID: fmt.Sprintf("i%d", i), Name: name, Location: testLocation,
			Quantity: 100, RebuyQuantity: 10, Tolerance: 5, Status: entity.StatusOK,
		})
		itemRules.assignments = append(itemRules.assignments, &entity.ItemRule{
			ID: fmt.Sprintf("a%d", i), ItemName: name, PropertyType: entity.PropertyEntirePlace, RuleID: "r1",
		})
	}
	items.failFor = map[string]error{"Item-04": errors.New("write timeout")}

	uc := newUseCase(items, rules, itemRules, alarms, checks, bookings)
	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)

	report, err := uc.Reconcile(context.Background(), run.ID,
		appspotcheck.Operator{ID: "u1", Name: "Joha"}, nil)
	require.NoError(t, err, "el fallo por ítem no se propaga al caller")

	assert.Equal(t, 10, report.ItemsAttempted)
	assert.Equal(t, 9, report.ItemsUpdated, "los otros 9 ítems se procesan igual")
	require.Len(t, report.Results, 10)

	var failed *dto.ItemOutcome
	for i := range report.Results {
		if report.Results[i].ItemName == "Item-04" {
			failed = &report.Results[i]
		}
	}
	require.NotNil(t, failed)
	assert.False(t, failed.Updated)
	assert.Contains(t, failed.Error, "write timeout")

	require.Len(t, checks.created, 1, "el registro de auditoría se crea una sola vez aunque haya fallos")
	assert.Equal(t, 9, checks.created[0].ItemsUpdated)
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados y ciclo de vida de la ejecución
// ──────────────────────────────────────────────────────────────────────────────

func TestReconcile_EjecucionInexistente(t *testing.T) {
	uc := newUseCase(baseFixture())
	_, err := uc.Reconcile(context.Background(), "no-existe", appspotcheck.Operator{}, nil)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestReconcile_DescartaLaEjecucionAlCompletar(t *testing.T) {
	uc := newUseCase(baseFixture())
	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)

	_, err = uc.Reconcile(context.Background(), run.ID, appspotcheck.Operator{ID: "u1", Name: "Joha"}, nil)
	require.NoError(t, err)
	assert.Equal(t, appspotcheck.StateCompleted, run.State)

	_, err = uc.Get(run.ID)
	assert.ErrorIs(t, err, domain.ErrRunNotFound, "el conjunto de trabajo se descarta al terminar")

	_, err = uc.Reconcile(context.Background(), run.ID, appspotcheck.Operator{}, nil)
	assert.ErrorIs(t, err, domain.ErrRunNotFound, "no hay re-reconciliación: se arranca una ejecución nueva")
}

func TestReconcile_AuditoriaCaidaNoPierdeElReporte(t *testing.T) {
	items, rules, itemRules, alarms, checks, bookings := baseFixture()
	checks.fail = true
	uc := newUseCase(items, rules, itemRules, alarms, checks, bookings)
	run, err := uc.Start(context.Background(), startInput())
	require.NoError(t, err)

	report, err := uc.Reconcile(context.Background(), run.ID, appspotcheck.Operator{ID: "u1", Name: "Joha"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report.ItemsUpdated)
	assert.Empty(t, report.SpotCheckID, "SpotCheckID vacío delata que la auditoría no quedó grabada")
}
