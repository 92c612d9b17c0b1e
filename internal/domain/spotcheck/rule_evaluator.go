// Package spotcheck contiene los servicios de dominio del motor de
// reconciliación de consumo: evaluación de reglas de texto, agregación por
// reserva y clasificación de stock. Todo es puro (sin I/O, sin dependencias
// de infraestructura) para que sea testeable con vectores exactos.
package spotcheck

import (
	"regexp"
	"strconv"
	"strings"
)

// Los multiplicadores se extraen como el entero inmediatamente anterior a la
// frase reconocida: "2 per guest" → 2. Sin entero, el multiplicador es 1.
var (
	rePerStayMult  = regexp.MustCompile(`(\d+)\s*per\s+(stay|booking)`)
	rePerGuestMult = regexp.MustCompile(`(\d+)\s*per\s+guest`)
	rePerNightMult = regexp.MustCompile(`(\d+)\s*per\s+night`)
	reFirstInt     = regexp.MustCompile(`\d+`)
)

// Evaluate interpreta el texto de una regla de consumo y devuelve las unidades
// consumidas por UNA reserva. Es total: nunca falla ni entra en pánico; texto
// irreconocible cae al primer entero encontrado y, si no hay ninguno, a 0.
//
// El match es case-insensitive y en orden estricto, primer match gana:
//
//  1. "per stay" / "per booking"   → multiplicador, plano por reserva
//  2. "per guest per night"        → multiplicador × huéspedes × noches
//  3. "per guest"                  → multiplicador × huéspedes
//  4. "per night"                  → multiplicador × noches
//  5. primer entero del texto, o 0
//
// La regla 2 DEBE evaluarse antes que la 3 y la 4: su texto contiene ambos
// substrings y el orden es un requisito de corrección, no de estilo. Se
// tolera la falta ortográfica histórica "per guest per nigth" porque existe
// en los datos operativos y es la superficie de compatibilidad.
func Evaluate(ruleText string, guests, nights int) int {
	text := strings.ToLower(ruleText)

	switch {
	case strings.Contains(text, "per stay") || strings.Contains(text, "per booking"):
		return multiplier(rePerStayMult, text)

	case strings.Contains(text, "per guest per night") || strings.Contains(text, "per guest per nigth"):
		return multiplier(rePerGuestMult, text) * guests * nights

	case strings.Contains(text, "per guest"):
		return multiplier(rePerGuestMult, text) * guests

	case strings.Contains(text, "per night"):
		return multiplier(rePerNightMult, text) * nights
	}

	if m := reFirstInt.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err == nil {
			return n
		}
	}
	return 0
}

// multiplier extrae el entero que precede a la frase; 1 si no hay.
func multiplier(re *regexp.Regexp, text string) int {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}
