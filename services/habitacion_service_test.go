package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
)

func TestHabitacionCrear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)

	h, err := svc.Habitaciones.Obtener(ctx, 201)
	require.NoError(t, err)
	assert.Equal(t, models.HabitacionDobleEstandar, h.Tipo)
	assert.Equal(t, models.EstadoDisponible, h.Estado)

	_, err = svc.Habitaciones.Crear(ctx, dto.HabitacionRequest{Numero: 201, Tipo: "suite doble", Capacidad: 2, CostoNoche: decimal.NewFromInt(1)})
	assert.True(t, errors.Is(err, apperr.ErrDuplicate))

	_, err = svc.Habitaciones.Crear(ctx, dto.HabitacionRequest{Numero: 301, Tipo: "penthouse", Capacidad: 0})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Problemas, 3)

	todas, err := svc.Habitaciones.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, todas, 3)
	assert.Equal(t, 101, todas[0].Numero)
}

func TestHabitacionGrillaYDisponibilidad(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "")

	_, err := svc.Reservas.Crear(ctx, reservaReq("GRILLA", dto.RangoHabitacion{Numero: 201, Desde: "2026-04-02", Hasta: "2026-04-04"}))
	require.NoError(t, err)
	checkIn(t, svc, 401, "2026-03-30", "2026-04-03", "30111222")
	h, err := svc.Habitaciones.CambiarEstado(ctx, 101, "fuera de servicio")
	require.NoError(t, err)
	assert.Equal(t, models.EstadoFueraDeServicio, h.Estado)

	grilla, err := svc.Habitaciones.Grilla(ctx, "2026-04-01", "2026-04-05")
	require.NoError(t, err)
	require.Len(t, grilla, 3)

	esperado := map[int]map[string]string{
		101: {"2026-04-01": "FUERA_DE_SERVICIO", "2026-04-02": "FUERA_DE_SERVICIO", "2026-04-03": "FUERA_DE_SERVICIO", "2026-04-04": "FUERA_DE_SERVICIO"},
		201: {"2026-04-01": "DISPONIBLE", "2026-04-02": "RESERVADA", "2026-04-03": "RESERVADA", "2026-04-04": "DISPONIBLE"},
		401: {"2026-04-01": "OCUPADA", "2026-04-02": "OCUPADA", "2026-04-03": "DISPONIBLE", "2026-04-04": "DISPONIBLE"},
	}
	for _, fila := range grilla {
		assert.Equal(t, esperado[fila.Numero], fila.Dias, "room %d", fila.Numero)
	}

	d, err := svc.Habitaciones.Disponible(ctx, 201, "2026-04-04", "2026-04-06")
	require.NoError(t, err)
	assert.True(t, d.Disponible)
	d, err = svc.Habitaciones.Disponible(ctx, 201, "2026-04-03", "2026-04-06")
	require.NoError(t, err)
	assert.False(t, d.Disponible)
	d, err = svc.Habitaciones.Disponible(ctx, 101, "2026-04-01", "2026-04-02")
	require.NoError(t, err)
	assert.False(t, d.Disponible)

	_, err = svc.Reservas.Crear(ctx, reservaReq("FUERA", dto.RangoHabitacion{Numero: 101, Desde: "2026-05-01", Hasta: "2026-05-02"}))
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	var ve *apperr.ValidationError
	_, err = svc.Habitaciones.Grilla(ctx, "2026-04-05", "2026-04-01")
	assert.ErrorAs(t, err, &ve)
	_, err = svc.Habitaciones.CambiarEstado(ctx, 101, "roto")
	assert.ErrorAs(t, err, &ve)
}
