package spotcheck

import "github.com/jhoicas/Amenidades-api/internal/domain/entity"

// Margen sobre el umbral de recompra a partir del cual el stock se considera
// holgado: verificado > recompra × 1.25 → OK.
const rebuyOKFactor = 1.25

// ExpectedQuantity deriva la cantidad restante esperada de un ítem tras el
// consumo del rango de fechas. Nunca devuelve negativo; con consumo cero (o
// sin reglas que apliquen) la cantidad actual se conserva tal cual.
func ExpectedQuantity(current, consumed int) int {
	if consumed <= 0 {
		return current
	}
	expected := current - consumed
	if expected < 0 {
		return 0
	}
	return expected
}

// ClassifyStatus clasifica el stock verificado contra las bandas derivadas del
// umbral de recompra. Las tres bandas son exhaustivas y mutuamente excluyentes
// para cualquier par (verificado, recompra) no negativo:
//
//	verificado >  recompra × 1.25 → OK
//	verificado <  recompra        → Reorder
//	en otro caso                  → Low Stock
func ClassifyStatus(verified, rebuy int) entity.ItemStatus {
	switch {
	case float64(verified) > float64(rebuy)*rebuyOKFactor:
		return entity.StatusOK
	case verified < rebuy:
		return entity.StatusReorder
	default:
		return entity.StatusLowStock
	}
}

// ConsistencyGap compara el conteo físico contra la predicción del modelo.
// Dispara (ok=true) si y solo si verificado < esperado − tolerancia, y en ese
// caso missing es la cantidad faltante (esperado − verificado). Es una señal
// ortogonal a ClassifyStatus: habla de calidad del dato, no de suficiencia de
// stock, y puede dispararse junto con cualquiera de las tres bandas.
func ConsistencyGap(expected, tolerance, verified int) (missing int, ok bool) {
	minThreshold := expected - tolerance
	if verified < minThreshold {
		return expected - verified, true
	}
	return 0, false
}
