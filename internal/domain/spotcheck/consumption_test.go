package spotcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/spotcheck"
)

func item(name string) *entity.InventoryItem {
	return &entity.InventoryItem{Name: name, Location: "casa-centro"}
}

func rule(id, text string) *entity.ConsumptionRule {
	return &entity.ConsumptionRule{ID: id, Name: text}
}

func assignment(itemName string, pt entity.PropertyType, ruleID string) *entity.ItemRule {
	return &entity.ItemRule{ItemName: itemName, PropertyType: pt, RuleID: ruleID}
}

func TestBuildRuleIndex_ReemplazaDuplicados(t *testing.T) {
	rules := []*entity.ConsumptionRule{rule("r1", "1 per guest"), rule("r2", "2 per night")}
	assignments := []*entity.ItemRule{
		assignment("Agua", entity.PropertyEntirePlace, "r1"),
		assignment("Agua", entity.PropertyEntirePlace, "r2"), // mismo par: reemplaza, no acumula
	}

	idx := spotcheck.BuildRuleIndex(assignments, rules)
	require.Len(t, idx, 1, "el par (ítem, tipo) es único")
	assert.Equal(t, "2 per night", idx[spotcheck.RuleKey{ItemName: "Agua", PropertyType: entity.PropertyEntirePlace}])
}

func TestBuildRuleIndex_IgnoraReglaInexistente(t *testing.T) {
	idx := spotcheck.BuildRuleIndex(
		[]*entity.ItemRule{assignment("Agua", entity.PropertyEntirePlace, "no-existe")},
		[]*entity.ConsumptionRule{rule("r1", "1 per guest")},
	)
	assert.Empty(t, idx)
}

func TestExpectedConsumption_AcumulaPorItem(t *testing.T) {
	items := []*entity.InventoryItem{item("Agua"), item("Jabón"), item("Café")}
	idx := spotcheck.BuildRuleIndex(
		[]*entity.ItemRule{
			assignment("Agua", entity.PropertyEntirePlace, "r1"),
			assignment("Jabón", entity.PropertyEntirePlace, "r2"),
			assignment("Jabón", entity.PropertyPrivateRoom, "r3"),
		},
		[]*entity.ConsumptionRule{
			rule("r1", "1 per guest per night"),
			rule("r2", "2 per stay"),
			rule("r3", "1 per guest"),
		},
	)

	bookings := []entity.Booking{
		{ID: "b1", Guests: 4, Nights: 2, RoomType: "Entire home/apt"},
		{ID: "b2", Guests: 2, Nights: 3, RoomType: "Private room"},
	}

	totals := spotcheck.ExpectedConsumption(bookings, items, idx)

	// Agua: solo la reserva entire_place aplica → 1×4×2 = 8
	assert.Equal(t, 8, totals["Agua"])
	// Jabón: 2 plano por la estadía entire_place + 1×2 por la private room
	assert.Equal(t, 4, totals["Jabón"])
	// Café: sin regla para ningún tipo → presente con 0
	assert.Equal(t, 0, totals["Café"])
}

func TestExpectedConsumption_SinReservas(t *testing.T) {
	totals := spotcheck.ExpectedConsumption(nil, []*entity.InventoryItem{item("Agua")}, spotcheck.RuleIndex{})
	require.Contains(t, totals, "Agua", "todo ítem aparece en el resultado")
	assert.Equal(t, 0, totals["Agua"])
}

func TestExpectedConsumption_TipoDesconocidoAportaCero(t *testing.T) {
	items := []*entity.InventoryItem{item("Agua")}
	idx := spotcheck.BuildRuleIndex(
		[]*entity.ItemRule{assignment("Agua", entity.PropertyEntirePlace, "r1")},
		[]*entity.ConsumptionRule{rule("r1", "5 per stay")},
	)
	bookings := []entity.Booking{{ID: "b1", Guests: 2, Nights: 1, RoomType: "Castillo flotante"}}

	totals := spotcheck.ExpectedConsumption(bookings, items, idx)
	assert.Equal(t, 0, totals["Agua"], "etiqueta no mapeable → unknown → sin regla → cero")
}
