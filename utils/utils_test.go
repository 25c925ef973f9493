package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldKey(t *testing.T) {
	cases := map[string]string{
		"Fuera de servicio":     "FUERA_DE_SERVICIO",
		"  pasaporté ":          "PASAPORTE",
		"Libreta Cívica":        "LIBRETA_CIVICA",
		"doble--estándar":       "DOBLE_ESTANDAR",
		"SUPERIOR_FAMILY_PLAN.": "SUPERIOR_FAMILY_PLAN",
		"":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FoldKey(in), in)
	}
}

func TestEnumTable(t *testing.T) {
	tabla := NewEnumTable("moneda", "PESOS", "DOLARES").Alias("USD", "DOLARES")

	v, ok := tabla.Normalize("dólares")
	require.True(t, ok)
	assert.Equal(t, "DOLARES", v)
	v, ok = tabla.Normalize("usd")
	require.True(t, ok)
	assert.Equal(t, "DOLARES", v)
	_, ok = tabla.Normalize("yenes")
	assert.False(t, ok)
	assert.Equal(t, []string{"DOLARES", "PESOS"}, tabla.Values())
}

func TestParseFecha(t *testing.T) {
	want := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2026-03-07", "07/03/2026", "7/3/2026", "2026-03-07T22:15:00-03:00"} {
		got, err := ParseFecha(raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), "%s -> %s", raw, got)
	}
	for _, raw := range []string{"", "2026-02-30", "mañana"} {
		_, err := ParseFecha(raw)
		assert.Error(t, err, raw)
	}
}

func TestNochesYDias(t *testing.T) {
	desde := time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 4, 2, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, Noches(desde, hasta))
	dias := Dias(desde, hasta)
	require.Len(t, dias, 5)
	assert.Equal(t, "2026-04-01", dias[4].Format(LayoutFecha))
	assert.Empty(t, Dias(hasta, desde))
}

func TestEdad(t *testing.T) {
	nac := time.Date(2008, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 17, Edad(nac, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, Edad(nac, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 18, Edad(nac, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseHora(t *testing.T) {
	m, err := ParseHora(" 11:30 ")
	require.NoError(t, err)
	assert.Equal(t, 690, m)
	_, err = ParseHora("25:00")
	assert.Error(t, err)
	_, err = ParseHora("11h")
	assert.Error(t, err)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("HOTEL_TEST_INT", "42")
	t.Setenv("HOTEL_TEST_BAD", "x")
	t.Setenv("HOTEL_TEST_DUR", "90m")
	t.Setenv("HOTEL_TEST_LIST", " http://a.test , ,http://b.test")

	assert.Equal(t, 42, EnvInt("HOTEL_TEST_INT", 1))
	assert.Equal(t, 1, EnvInt("HOTEL_TEST_BAD", 1))
	assert.Equal(t, 90*time.Minute, EnvDuration("HOTEL_TEST_DUR", time.Hour))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, EnvList("HOTEL_TEST_LIST"))
	assert.Nil(t, EnvList("HOTEL_TEST_UNSET"))
	assert.Equal(t, "def", EnvOrDefault("HOTEL_TEST_UNSET", "def"))
}
