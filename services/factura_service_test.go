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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalcularDetalleRecargos(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "1980-01-01")
	guardarHuesped(t, svc, "45111222", "LOPEZ", "2014-02-02")
	checkIn(t, svc, 201, "2026-03-07", "2026-03-12", "30111222", "45111222")

	cases := []struct {
		hora  string
		items int
		neto  string
	}{
		{"", 1, "6000"},
		{"11:00", 1, "6000"},
		{"12:30", 2, "7000"},
		{"18:00", 2, "7000"},
		{"19:15", 2, "8000"},
	}
	for _, tc := range cases {
		t.Run("salida "+tc.hora, func(t *testing.T) {
			d, err := svc.Facturas.CalcularDetalle(ctx, dto.DetalleFacturaRequest{Numero: 201, HoraSalida: tc.hora})
			require.NoError(t, err)
			require.Len(t, d.Items, tc.items)
			assert.Equal(t, 3, d.Items[0].Cantidad)
			assert.True(t, d.ImporteNeto.Equal(dec(tc.neto)), d.ImporteNeto.String())
			assert.True(t, d.IVA.Equal(dec(tc.neto).Mul(dec("0.21"))), d.IVA.String())
			assert.True(t, d.Total.Equal(d.ImporteNeto.Add(d.IVA)))
		})
	}

	d, err := svc.Facturas.CalcularDetalle(ctx, dto.DetalleFacturaRequest{Numero: 201})
	require.NoError(t, err)
	require.Len(t, d.Ocupantes, 2)
	assert.True(t, d.Ocupantes[0].MayorDeEdad)
	assert.False(t, d.Ocupantes[1].MayorDeEdad)

	_, err = svc.Facturas.CalcularDetalle(ctx, dto.DetalleFacturaRequest{Numero: 201, HoraSalida: "25:00"})
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Facturas.CalcularDetalle(ctx, dto.DetalleFacturaRequest{Numero: 101})
	assert.True(t, errors.Is(err, apperr.ErrNotFound), "no active stay")
}

func TestCalcularDetalleMinimoUnaNoche(t *testing.T) {
	svc, _ := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "")
	checkIn(t, svc, 101, "2026-03-10", "2026-03-12", "30111222")

	d, err := svc.Facturas.CalcularDetalle(context.Background(), dto.DetalleFacturaRequest{Numero: 101})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Items[0].Cantidad)
	assert.True(t, d.ImporteNeto.Equal(dec("1000")))
}

func TestFacturarAHuespedCierraEstadia(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "1980-01-01")
	e := checkIn(t, svc, 201, "2026-03-07", "2026-03-12", "30111222")

	ref := dni("30111222")
	f, err := svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e.ID, HoraSalida: "10:00", Huesped: &ref})
	require.NoError(t, err)
	assert.Equal(t, models.FacturaTipoB, f.Tipo)
	assert.Equal(t, models.FacturaPendiente, f.Estado)
	require.NotNil(t, f.Numero)
	assert.Equal(t, "0001-00000001", *f.Numero)
	assert.True(t, f.ImporteTotal.Equal(dec("7260")), f.ImporteTotal.String())
	assert.Equal(t, models.ResponsableFisica, f.ResponsablePago.Tipo)

	cerrada, err := repos.Estadias.FindByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstadiaFinalizada, cerrada.Estado)
	assert.Equal(t, "2026-03-10", cerrada.FechaCheckOut.Format("2006-01-02"))

	h, err := svc.Habitaciones.Obtener(ctx, 201)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoDisponible, h.Estado)

	_, err = svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e.ID, Huesped: &ref})
	assert.True(t, errors.Is(err, apperr.ErrConflict), "already billed")

	pdf, err := svc.Facturas.PDF(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestFacturarAEmpresaEsTipoA(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "")
	e := checkIn(t, svc, 101, "2026-03-08", "2026-03-12", "30111222")

	_, err := svc.Responsables.CrearJuridica(ctx, dto.PersonaJuridicaRequest{RazonSocial: "Hoteles del Sur SA", CUIT: "30-71234567-1"})
	require.NoError(t, err)

	f, err := svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e.ID, CUIT: "30712345671"})
	require.NoError(t, err)
	assert.Equal(t, models.FacturaTipoA, f.Tipo)
	assert.True(t, f.ImporteNeto.Equal(dec("2000")))
	assert.True(t, f.IVA.Equal(dec("420")))

	pendientes, err := svc.Facturas.PendientesDe(ctx, f.ResponsablePagoID)
	require.NoError(t, err)
	assert.Len(t, pendientes, 1)

	pdf, err := svc.Facturas.PDF(ctx, f.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestFacturarValidaResponsable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "1980-01-01")
	guardarHuesped(t, svc, "45111222", "LOPEZ", "2014-02-02")
	guardarHuesped(t, svc, "30111999", "AJENO", "")
	e := checkIn(t, svc, 201, "2026-03-08", "2026-03-12", "30111222", "45111222")

	menor, ajeno, titular := dni("45111222"), dni("30111999"), dni("30111222")
	var ve *apperr.ValidationError
	for name, req := range map[string]dto.NuevaFacturaRequest{
		"minor":        {EstadiaID: e.ID, Huesped: &menor},
		"not a guest":  {EstadiaID: e.ID, Huesped: &ajeno},
		"both":         {EstadiaID: e.ID, Huesped: &titular, CUIT: "30712345671"},
		"neither":      {EstadiaID: e.ID},
		"invalid cuit": {EstadiaID: e.ID, CUIT: "30712345670"},
	} {
		_, err := svc.Facturas.Facturar(ctx, req)
		assert.ErrorAs(t, err, &ve, name)
	}

	_, err := svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e.ID, CUIT: "20123456786"})
	assert.True(t, errors.Is(err, apperr.ErrNotFound), "unknown company")

	activa, err := svc.Estadias.ActivaPorHabitacion(ctx, 201)
	require.NoError(t, err)
	assert.Equal(t, e.ID, activa.ID)
}

func TestNotaCredito(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	guardarHuesped(t, svc, "30111222", "LOPEZ", "")
	guardarHuesped(t, svc, "30111333", "SOSA", "")
	_, err := svc.Responsables.CrearJuridica(ctx, dto.PersonaJuridicaRequest{RazonSocial: "Hoteles del Sur SA", CUIT: "30712345671"})
	require.NoError(t, err)

	e1 := checkIn(t, svc, 101, "2026-03-08", "2026-03-12", "30111222")
	e2 := checkIn(t, svc, 201, "2026-03-08", "2026-03-12", "30111333")
	e3 := checkIn(t, svc, 401, "2026-03-08", "2026-03-12", "30111222")

	f1, err := svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e1.ID, CUIT: "30712345671"})
	require.NoError(t, err)
	f2, err := svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e2.ID, CUIT: "30712345671"})
	require.NoError(t, err)
	ref := dni("30111222")
	f3, err := svc.Facturas.Facturar(ctx, dto.NuevaFacturaRequest{EstadiaID: e3.ID, Huesped: &ref})
	require.NoError(t, err)

	_, err = svc.Facturas.GenerarNotaCredito(ctx, []uint{f1.ID, f3.ID})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve, "different billing parties")

	_, err = svc.Facturas.GenerarNotaCredito(ctx, []uint{f1.ID, 999})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	nc, err := svc.Facturas.GenerarNotaCredito(ctx, []uint{f1.ID, f2.ID, f1.ID})
	require.NoError(t, err)
	require.Len(t, nc.Facturas, 2)
	assert.True(t, nc.ImporteDevolucion.Equal(f1.ImporteTotal.Add(f2.ImporteTotal)))
	require.NotNil(t, nc.Numero)

	anulada, err := svc.Facturas.Obtener(ctx, f1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FacturaAnulada, anulada.Estado)

	_, err = svc.Facturas.GenerarNotaCredito(ctx, []uint{f2.ID})
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}
