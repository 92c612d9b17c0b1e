package entity

import "strings"

// PropertyType categoría gruesa de la unidad de alquiler. Decide qué regla de
// consumo aplica a cada amenidad.
type PropertyType string

const (
	PropertyEntirePlace PropertyType = "entire_place"
	PropertyPrivateRoom PropertyType = "private_room"
	PropertySharedRoom  PropertyType = "shared_room"
	PropertyUnknown     PropertyType = "unknown"
)

// ParsePropertyType mapea la etiqueta libre del canal de reservas a un
// PropertyType. El match es por substring case-insensitive porque cada canal
// escribe la etiqueta a su manera ("Entire home/apt", "Private room in ...").
func ParsePropertyType(label string) PropertyType {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "entire"):
		return PropertyEntirePlace
	case strings.Contains(l, "private"):
		return PropertyPrivateRoom
	case strings.Contains(l, "shared"):
		return PropertySharedRoom
	default:
		return PropertyUnknown
	}
}
