package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-gestion/dto"
	"hotel-gestion/models"
)

func TestValidarRango(t *testing.T) {
	d := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		hasta time.Time
		ok    bool
	}{
		{"una noche", d.AddDate(0, 0, 1), true},
		{"exactamente el máximo", d.AddDate(0, 0, 60), true},
		{"supera el máximo", d.AddDate(0, 0, 61), false},
		{"mismo día", d, false},
		{"invertido", d.AddDate(0, 0, -2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			problemas := ValidarRango(Rango{Desde: d, Hasta: tc.hasta}, 60)
			assert.Equal(t, tc.ok, len(problemas) == 0, problemas)
		})
	}
}

func TestParseRangoFormatos(t *testing.T) {
	r, problemas := ParseRango("10/03/2026", "2026-03-12", 0)
	assert.Empty(t, problemas)
	assert.Equal(t, 2, r.Noches())

	_, problemas = ParseRango("ayer", "", 0)
	assert.Len(t, problemas, 2)
}

func TestRangoSolapa(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC) }
	a := Rango{d(10), d(15)}
	assert.False(t, a.Solapa(Rango{d(15), d(20)}))
	assert.False(t, a.Solapa(Rango{d(5), d(10)}))
	assert.True(t, a.Solapa(Rango{d(14), d(16)}))
}

func TestCuitValido(t *testing.T) {
	assert.True(t, cuitValido("20-12345678-6"))
	assert.True(t, cuitValido("30712345671"))
	assert.False(t, cuitValido("20-12345678-5"))
	assert.False(t, cuitValido("2012345678"))
	assert.Equal(t, "30-71234567-1", normalizarCUIT("30712345671"))
}

func TestNormalizarDocumento(t *testing.T) {
	tipo, numero, problemas := normalizarDocumento(dto.DocumentoRef{TipoDocumento: "Pasaporté", NumeroDocumento: " ab 123.456 "})
	assert.Empty(t, problemas)
	assert.Equal(t, models.DocumentoPasaporte, tipo)
	assert.Equal(t, "AB123456", numero)

	_, _, problemas = normalizarDocumento(dto.DocumentoRef{TipoDocumento: "carnet", NumeroDocumento: "1"})
	assert.Len(t, problemas, 2)
}
