package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"hotel-gestion/config"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/storage"
)

// hoy is the fixed clock of every service test.
var hoy = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestServices(t *testing.T) (*Services, *repositories.Repositories) {
	t.Helper()
	db, err := config.OpenSQLite(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repos := repositories.New(db)
	svc := New(repos, storage.NewMemorySessionStore(), Opciones{
		JWTSecret: "secreto-de-prueba",
		Now:       func() time.Time { return hoy },
	})

	ctx := context.Background()
	for _, h := range []dto.HabitacionRequest{
		{Numero: 101, Tipo: "Individual Estandar", Capacidad: 1, CostoNoche: decimal.NewFromInt(1000)},
		{Numero: 201, Tipo: "doble estándar", Capacidad: 2, CostoNoche: decimal.NewFromInt(2000)},
		{Numero: 401, Tipo: "SUPERIOR_FAMILY_PLAN", Capacidad: 5, CostoNoche: decimal.NewFromInt(5000)},
	} {
		_, err := svc.Habitaciones.Crear(ctx, h)
		require.NoError(t, err)
	}
	return svc, repos
}

func guardarHuesped(t *testing.T, svc *Services, numero, apellido, nacimiento string) {
	t.Helper()
	_, err := svc.Huespedes.Guardar(context.Background(), dto.HuespedRequest{
		TipoDocumento:   "DNI",
		NumeroDocumento: numero,
		Apellido:        apellido,
		Nombres:         "Test",
		FechaNacimiento: nacimiento,
	})
	require.NoError(t, err)
}

func dni(numero string) dto.DocumentoRef {
	return dto.DocumentoRef{TipoDocumento: models.DocumentoDNI, NumeroDocumento: numero}
}

func checkIn(t *testing.T, svc *Services, numero int, desde, hasta, responsable string, acomp ...string) *models.Estadia {
	t.Helper()
	req := dto.NuevaEstadiaRequest{Numero: numero, Desde: desde, Hasta: hasta, Responsable: dni(responsable)}
	for _, a := range acomp {
		req.Acompaniantes = append(req.Acompaniantes, dni(a))
	}
	e, err := svc.Estadias.CheckIn(context.Background(), req)
	require.NoError(t, err)
	return e
}
