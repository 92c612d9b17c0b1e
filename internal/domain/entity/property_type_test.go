package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
)

func TestParsePropertyType(t *testing.T) {
	cases := map[string]entity.PropertyType{
		"Entire home/apt":            entity.PropertyEntirePlace,
		"entire place":               entity.PropertyEntirePlace,
		"Private room in guesthouse": entity.PropertyPrivateRoom,
		"Shared room":                entity.PropertySharedRoom,
		"Loft":                       entity.PropertyUnknown,
		"":                           entity.PropertyUnknown,
	}
	for label, expected := range cases {
		assert.Equal(t, expected, entity.ParsePropertyType(label), "etiqueta %q", label)
	}
}
