package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

func TestFacturaAnularSoloPendientes(t *testing.T) {
	ctx := context.Background()
	repos := New(newTestDB(t))
	f := crearFactura(t, repos, 1000)

	pendientes, err := repos.Facturas.Pendientes(ctx, f.ResponsablePagoID)
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	nc := &models.NotaCredito{
		Fecha:             time.Now().UTC(),
		ImporteNeto:       f.ImporteNeto,
		IVA:               f.IVA,
		ImporteDevolucion: f.ImporteTotal,
	}
	require.NoError(t, repos.NotasCredito.Create(ctx, nc, 1))
	require.NoError(t, repos.Facturas.Anular(ctx, []uint{f.ID}, nc.ID))

	err = repos.Facturas.Anular(ctx, []uint{f.ID}, nc.ID)
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	got, err := repos.NotasCredito.FindByID(ctx, nc.ID)
	require.NoError(t, err)
	require.Len(t, got.Facturas, 1)
	assert.Equal(t, models.FacturaAnulada, got.Facturas[0].Estado)
	assert.True(t, got.ImporteDevolucion.Equal(decimal.NewFromInt(1000)))
}

func TestFacturaFindByIDCargaResponsable(t *testing.T) {
	ctx := context.Background()
	repos := New(newTestDB(t))
	f := crearFactura(t, repos, 1000)

	got, err := repos.Facturas.FindByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "MARTINEZ, Ana", got.ResponsablePago.RazonSocial())
	assert.Equal(t, models.IVAConsumidorFinal, got.ResponsablePago.PosicionIVA())
	assert.Equal(t, 301, got.Estadia.Habitacion.Numero)
}

func TestResponsableJuridicaCUITDuplicado(t *testing.T) {
	ctx := context.Background()
	repos := New(newTestDB(t))

	_, err := repos.Responsables.CreateJuridica(ctx, &models.PersonaJuridica{RazonSocial: "Acme SA", CUIT: "30-71234567-1"})
	require.NoError(t, err)

	_, err = repos.Responsables.CreateJuridica(ctx, &models.PersonaJuridica{RazonSocial: "Otra SA", CUIT: "30-71234567-1"})
	assert.True(t, errors.Is(err, apperr.ErrDuplicate))

	rp, err := repos.Responsables.FindByCUIT(ctx, "30-71234567-1")
	require.NoError(t, err)
	assert.Equal(t, "Acme SA", rp.RazonSocial())
	assert.Equal(t, models.IVAResponsableInscripto, rp.PosicionIVA())

	list, err := repos.Responsables.SearchJuridicas(ctx, "ac")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
