package spotcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Amenidades-api/internal/domain/spotcheck"
)

// ──────────────────────────────────────────────────────────────────────────────
// El evaluador de reglas es la superficie de compatibilidad con el texto que
// los operadores ya escribieron en producción: estos tests fijan la semántica
// exacta (precedencia, falta ortográfica "nigth", fallback) y deben fallar
// ante cualquier "limpieza" del matching.
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_PerGuestPerNight(t *testing.T) {
	cases := []struct {
		name     string
		rule     string
		guests   int
		nights   int
		expected int
	}{
		{"con multiplicador", "2 per guest per night", 3, 4, 24},
		{"sin multiplicador", "per guest per night", 3, 4, 12},
		{"mayúsculas", "1 Per Guest Per Night", 2, 5, 10},
		{"falta ortográfica nigth", "2 per guest per nigth", 3, 4, 24},
		{"cero huéspedes", "2 per guest per night", 0, 4, 0},
		{"cero noches", "2 per guest per night", 3, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := spotcheck.Evaluate(tc.rule, tc.guests, tc.nights)
			assert.Equal(t, tc.expected, got, "regla %q", tc.rule)
		})
	}
}

// TestEvaluate_PrecedenciaGuestNight verifica que "per guest per night" gana
// sobre los matches sueltos de "per guest" y "per night" contenidos en el
// mismo texto. El orden de evaluación es un requisito de corrección.
func TestEvaluate_PrecedenciaGuestNight(t *testing.T) {
	got := spotcheck.Evaluate("2 per guest per night", 4, 2)
	assert.Equal(t, 16, got, "debe multiplicar por huéspedes Y noches, no solo por uno")
	assert.NotEqual(t, 2*4, got, "no debe resolverse como 'per guest' suelto")
	assert.NotEqual(t, 2*2, got, "no debe resolverse como 'per night' suelto")
}

func TestEvaluate_PerGuest(t *testing.T) {
	assert.Equal(t, 8, spotcheck.Evaluate("2 per guest", 4, 7), "multiplicador × huéspedes, las noches no cuentan")
	assert.Equal(t, 4, spotcheck.Evaluate("per guest", 4, 7), "multiplicador por defecto 1")
}

func TestEvaluate_PerNight(t *testing.T) {
	assert.Equal(t, 6, spotcheck.Evaluate("3 per night", 9, 2), "multiplicador × noches, los huéspedes no cuentan")
	assert.Equal(t, 2, spotcheck.Evaluate("per night", 9, 2), "multiplicador por defecto 1")
}

func TestEvaluate_PerStay(t *testing.T) {
	assert.Equal(t, 2, spotcheck.Evaluate("2 per stay", 4, 7), "plano por estadía, ignora huéspedes y noches")
	assert.Equal(t, 1, spotcheck.Evaluate("per stay", 4, 7))
	assert.Equal(t, 3, spotcheck.Evaluate("3 per booking", 4, 7), "'per booking' es sinónimo de 'per stay'")
}

// TestEvaluate_PerStayGanaSobreGuest confirma el orden del match: un texto con
// "per stay" se resuelve plano aunque también mencione huéspedes.
func TestEvaluate_PerStayGanaSobreGuest(t *testing.T) {
	got := spotcheck.Evaluate("1 per stay regardless of guest count", 5, 3)
	assert.Equal(t, 1, got)
}

func TestEvaluate_FallbackPrimerEntero(t *testing.T) {
	assert.Equal(t, 6, spotcheck.Evaluate("pack of 6 units weekly", 3, 2), "sin patrón conocido cae al primer entero")
	assert.Equal(t, 12, spotcheck.Evaluate("12", 3, 2))
}

func TestEvaluate_SinPatronNiEntero(t *testing.T) {
	assert.Equal(t, 0, spotcheck.Evaluate("reponer cuando se acabe", 3, 2), "sin patrón ni entero devuelve 0, nunca falla")
	assert.Equal(t, 0, spotcheck.Evaluate("", 3, 2))
}
