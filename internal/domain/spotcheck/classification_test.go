package spotcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/internal/domain/spotcheck"
)

func TestExpectedQuantity_NuncaNegativa(t *testing.T) {
	assert.Equal(t, 42, spotcheck.ExpectedQuantity(50, 8))
	assert.Equal(t, 0, spotcheck.ExpectedQuantity(5, 8), "consumo mayor que stock se clampa a 0")
	assert.Equal(t, 0, spotcheck.ExpectedQuantity(0, 0))
}

func TestExpectedQuantity_SinConsumoConservaActual(t *testing.T) {
	assert.Equal(t, 50, spotcheck.ExpectedQuantity(50, 0), "consumo cero conserva la cantidad actual")
	assert.Equal(t, 50, spotcheck.ExpectedQuantity(50, -3), "consumo no positivo conserva la cantidad actual")
}

func TestClassifyStatus_Bandas(t *testing.T) {
	cases := []struct {
		name     string
		verified int
		rebuy    int
		expected entity.ItemStatus
	}{
		{"holgado sobre 1.25x", 26, 20, entity.StatusOK},
		{"justo en 1.25x no es OK", 25, 20, entity.StatusLowStock},
		{"entre recompra y 1.25x", 22, 20, entity.StatusLowStock},
		{"igual a recompra", 20, 20, entity.StatusLowStock},
		{"bajo recompra", 19, 20, entity.StatusReorder},
		{"cero verificado", 0, 20, entity.StatusReorder},
		{"recompra cero siempre OK salvo cero", 1, 0, entity.StatusOK},
		{"recompra cero y verificado cero", 0, 0, entity.StatusLowStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, spotcheck.ClassifyStatus(tc.verified, tc.rebuy))
		})
	}
}

// TestClassifyStatus_ExhaustivoYExcluyente recorre una rejilla de pares no
// negativos y verifica que siempre sale exactamente una de las tres bandas.
func TestClassifyStatus_ExhaustivoYExcluyente(t *testing.T) {
	for verified := 0; verified <= 60; verified++ {
		for rebuy := 0; rebuy <= 40; rebuy++ {
			status := spotcheck.ClassifyStatus(verified, rebuy)
			switch status {
			case entity.StatusOK:
				assert.Greater(t, float64(verified), float64(rebuy)*1.25,
					"OK solo si verificado > recompra×1.25 (v=%d r=%d)", verified, rebuy)
			case entity.StatusReorder:
				assert.Less(t, verified, rebuy,
					"Reorder solo si verificado < recompra (v=%d r=%d)", verified, rebuy)
			case entity.StatusLowStock:
				assert.LessOrEqual(t, float64(verified), float64(rebuy)*1.25, "v=%d r=%d", verified, rebuy)
				assert.GreaterOrEqual(t, verified, rebuy, "v=%d r=%d", verified, rebuy)
			default:
				t.Fatalf("estado fuera de las tres bandas: %q (v=%d r=%d)", status, verified, rebuy)
			}
		}
	}
}

func TestConsistencyGap(t *testing.T) {
	missing, fired := spotcheck.ConsistencyGap(42, 5, 36)
	assert.True(t, fired, "36 < 42-5 debe disparar")
	assert.Equal(t, 6, missing)

	_, fired = spotcheck.ConsistencyGap(42, 5, 37)
	assert.False(t, fired, "justo en el umbral no dispara")

	_, fired = spotcheck.ConsistencyGap(42, 5, 50)
	assert.False(t, fired, "sobrante no dispara")
}

// TestConsistencyGap_IndependienteDeEstado reproduce el escenario de
// referencia: el mismo ítem puede quedar en Reorder Y disparar la alarma de
// consistencia en la misma pasada; son señales ortogonales.
func TestConsistencyGap_IndependienteDeEstado(t *testing.T) {
	// Agua: actual 50, recompra 20, tolerancia 5; una reserva de 4 huéspedes
	// por 2 noches con regla "1 per guest per night" → consumo 8, esperado 42.
	consumed := spotcheck.Evaluate("1 per guest per night", 4, 2)
	assert.Equal(t, 8, consumed)
	expected := spotcheck.ExpectedQuantity(50, consumed)
	assert.Equal(t, 42, expected)

	// Operador verifica 41: sin alarma de consistencia (41 >= 37) y OK (41 > 25).
	_, fired := spotcheck.ConsistencyGap(expected, 5, 41)
	assert.False(t, fired)
	assert.Equal(t, entity.StatusOK, spotcheck.ClassifyStatus(41, 20))

	// Operador verifica 15: Reorder (15 < 20) Y consistencia (15 < 37, faltan 27).
	missing, fired := spotcheck.ConsistencyGap(expected, 5, 15)
	assert.True(t, fired)
	assert.Equal(t, 27, missing)
	assert.Equal(t, entity.StatusReorder, spotcheck.ClassifyStatus(15, 20))
}
