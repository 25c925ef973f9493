package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

func TestReservaExisteSolapamiento(t *testing.T) {
	ctx := context.Background()
	repos := New(newTestDB(t))
	h := crearHabitacion(t, repos, 101, 2)

	r := &models.Reserva{
		HabitacionID: h.ID,
		FechaInicio:  fecha("2026-03-10"),
		FechaFin:     fecha("2026-03-15"),
		Estado:       models.ReservaActiva,
		Nombre:       "Ana",
		Apellido:     "PEREZ",
		Telefono:     "341555",
	}
	require.NoError(t, repos.Reservas.Create(ctx, r))

	cases := []struct {
		name        string
		desde       string
		hasta       string
		esperaCruce bool
	}{
		{"termina justo al inicio", "2026-03-05", "2026-03-10", false},
		{"empieza justo al final", "2026-03-15", "2026-03-18", false},
		{"se superpone al inicio", "2026-03-08", "2026-03-11", true},
		{"contenida", "2026-03-11", "2026-03-12", true},
		{"la contiene", "2026-03-01", "2026-03-30", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := repos.Reservas.ExisteSolapamiento(ctx, h.ID, fecha(tc.desde), fecha(tc.hasta), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.esperaCruce, ok)
		})
	}

	t.Run("excluye la reserva indicada", func(t *testing.T) {
		ok, err := repos.Reservas.ExisteSolapamiento(ctx, h.ID, fecha("2026-03-10"), fecha("2026-03-15"), &r.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ignora reservas canceladas", func(t *testing.T) {
		require.NoError(t, repos.Reservas.UpdateEstado(ctx, r.ID, models.ReservaCancelada))
		ok, err := repos.Reservas.ExisteSolapamiento(ctx, h.ID, fecha("2026-03-10"), fecha("2026-03-15"), nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestReservaSearchSoloActivasPorPrefijo(t *testing.T) {
	ctx := context.Background()
	repos := New(newTestDB(t))
	h := crearHabitacion(t, repos, 101, 2)

	for i, apellido := range []string{"PEREZ", "PERALTA", "GOMEZ"} {
		require.NoError(t, repos.Reservas.Create(ctx, &models.Reserva{
			HabitacionID: h.ID,
			FechaInicio:  fecha("2026-04-01").AddDate(0, 0, i*3),
			FechaFin:     fecha("2026-04-03").AddDate(0, 0, i*3),
			Estado:       models.ReservaActiva,
			Nombre:       "Juan",
			Apellido:     apellido,
			Telefono:     "1",
		}))
	}

	list, err := repos.Reservas.Search(ctx, "per", "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 101, list[0].Habitacion.Numero)

	require.NoError(t, repos.Reservas.UpdateEstado(ctx, list[0].ID, models.ReservaCancelada))
	list, err = repos.Reservas.Search(ctx, "PER", "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReservaFindByIDNoExiste(t *testing.T) {
	repos := New(newTestDB(t))
	_, err := repos.Reservas.FindByID(context.Background(), 99)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
