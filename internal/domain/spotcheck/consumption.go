package spotcheck

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// RuleKey identifica la regla aplicable a un ítem para un tipo de propiedad.
type RuleKey struct {
	ItemName     string
	PropertyType entity.PropertyType
}

// RuleIndex resuelve (ítem, tipo de propiedad) → texto de la regla de consumo.
// Por invariante de dominio hay a lo sumo una regla por par.
type RuleIndex map[RuleKey]string

// BuildRuleIndex arma el índice a partir de las asignaciones y las reglas.
// Si llegan dos asignaciones para el mismo par, la última reemplaza a la
// anterior (semántica de reemplazo, nunca de acumulación). Asignaciones que
// apuntan a una regla inexistente se ignoran.
func BuildRuleIndex(assignments []*entity.ItemRule, rules []*entity.ConsumptionRule) RuleIndex {
	textByRuleID := make(map[string]string, len(rules))
	for _, r := range rules {
		textByRuleID[r.ID] = r.Name
	}

	idx := make(RuleIndex, len(assignments))
	for _, a := range assignments {
		text, ok := textByRuleID[a.RuleID]
		if !ok {
			continue
		}
		idx[RuleKey{ItemName: a.ItemName, PropertyType: a.PropertyType}] = text
	}
	return idx
}

// ExpectedConsumption agrega el consumo esperado del rango de fechas: por cada
// reserva mapea su etiqueta de habitación a PropertyType y, por cada ítem de
// la ubicación, evalúa la regla del par si existe y acumula por nombre de
// ítem. Un ítem sin regla para el tipo de propiedad de una reserva aporta
// cero por esa reserva; todo ítem aparece en el resultado, aunque sea con 0.
func ExpectedConsumption(bookings []entity.Booking, items []*entity.InventoryItem, idx RuleIndex) map[string]int {
	totals := make(map[string]int, len(items))
	for _, item := range items {
		totals[item.Name] = 0
	}

	for _, b := range bookings {
		propertyType := entity.ParsePropertyType(b.RoomType)
		for _, item := range items {
			text, ok := idx[RuleKey{ItemName: item.Name, PropertyType: propertyType}]
			if !ok {
				continue
			}
			totals[item.Name] += Evaluate(text, b.Guests, b.Nights)
		}
	}
	return totals
}
