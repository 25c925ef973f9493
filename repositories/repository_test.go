package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-gestion/config"
	"hotel-gestion/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenSQLite(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func crearHabitacion(t *testing.T, repos *Repositories, numero, capacidad int) *models.Habitacion {
	t.Helper()
	h := &models.Habitacion{
		Numero:     numero,
		Tipo:       models.HabitacionDobleEstandar,
		Capacidad:  capacidad,
		Estado:     models.EstadoDisponible,
		CostoNoche: decimal.NewFromInt(1000),
	}
	require.NoError(t, repos.Habitaciones.Create(context.Background(), h))
	return h
}

func crearHuesped(t *testing.T, repos *Repositories, numero, apellido string) *models.Huesped {
	t.Helper()
	h := &models.Huesped{
		TipoDocumento:   models.DocumentoDNI,
		NumeroDocumento: numero,
		Apellido:        apellido,
		Nombres:         "Ana",
		PosicionIVA:     models.IVAConsumidorFinal,
	}
	_, err := repos.Huespedes.Upsert(context.Background(), h)
	require.NoError(t, err)
	return h
}
