package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
)

// facturaPendiente bills two nights of room 101: 2000 + IVA = 2420.
func facturaPendiente(t *testing.T, svc *Services) *models.Factura {
	t.Helper()
	guardarHuesped(t, svc, "30111222", "LOPEZ", "")
	e := checkIn(t, svc, 101, "2026-03-08", "2026-03-12", "30111222")
	ref := dni("30111222")
	f, err := svc.Facturas.Facturar(context.Background(), dto.NuevaFacturaRequest{EstadiaID: e.ID, Huesped: &ref})
	require.NoError(t, err)
	require.True(t, f.ImporteTotal.Equal(dec("2420")), f.ImporteTotal.String())
	return f
}

func efectivo(importe string) dto.MedioPagoDTO {
	return dto.MedioPagoDTO{Efectivo: &dto.EfectivoDTO{Importe: dec(importe)}}
}

func credito(vencimiento string, cuotas int, importe string) dto.MedioPagoDTO {
	return dto.MedioPagoDTO{TarjetaCredito: &dto.TarjetaDTO{
		NumeroTarjeta: "4509 9535 6623 3704",
		Banco:         "Banco Nación",
		Titular:       "Ana Lopez",
		Vencimiento:   vencimiento,
		Cuotas:        cuotas,
		Importe:       dec(importe),
	}}
}

func TestPagoParcialYLuegoTotal(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	f := facturaPendiente(t, svc)

	r, err := svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Medios: []dto.MedioPagoDTO{efectivo("1000")}})
	require.NoError(t, err)
	assert.Equal(t, models.FacturaPendiente, r.EstadoFactura)
	assert.True(t, r.Saldo.Equal(dec("1420")), r.Saldo.String())
	assert.True(t, r.Vuelto.IsZero())

	r, err = svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Medios: []dto.MedioPagoDTO{
		{Cheque: &dto.ChequeDTO{NumeroCheque: "A0012345", Banco: "Banco Provincia", Plaza: "Santa Fe", FechaCobro: "2026-03-20", Importe: dec("500")}},
		credito("12/27", 3, "1000"),
	}})
	require.NoError(t, err)
	assert.Equal(t, models.FacturaPagada, r.EstadoFactura)
	assert.True(t, r.Importe.Equal(dec("1500")))
	assert.True(t, r.Vuelto.Equal(dec("80")), r.Vuelto.String())
	assert.True(t, r.Saldo.IsZero())

	pagos, err := svc.Pagos.DeFactura(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, pagos, 2)

	_, err = svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Medios: []dto.MedioPagoDTO{efectivo("1")}})
	assert.True(t, errors.Is(err, apperr.ErrConflict), "invoice already paid")
}

func TestPagoEnMonedaExtranjera(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	f := facturaPendiente(t, svc)

	_, err := svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Moneda: "dólares", Medios: []dto.MedioPagoDTO{efectivo("3")}})
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve, "missing exchange rate")

	r, err := svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{
		FacturaID:  f.ID,
		Moneda:     "Dolares",
		Cotizacion: dec("1000"),
		Medios:     []dto.MedioPagoDTO{efectivo("3")},
	})
	require.NoError(t, err)
	assert.True(t, r.Importe.Equal(dec("3000")))
	assert.True(t, r.Vuelto.Equal(dec("580")))
	assert.Equal(t, models.FacturaPagada, r.EstadoFactura)

	pagos, err := svc.Pagos.DeFactura(ctx, f.ID)
	require.NoError(t, err)
	require.Len(t, pagos, 1)
	assert.Equal(t, models.MonedaDolares, pagos[0].Moneda)
}

func TestPagoValidaMedios(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestServices(t)
	f := facturaPendiente(t, svc)

	cases := map[string][]dto.MedioPagoDTO{
		"expired card":      {credito("02/26", 1, "100")},
		"no installments":   {credito("12/27", 0, "100")},
		"bad expiry format": {credito("2027-12", 1, "100")},
		"zero amount":       {efectivo("0")},
		"two instruments":   {{Efectivo: &dto.EfectivoDTO{Importe: dec("10")}, Cheque: &dto.ChequeDTO{NumeroCheque: "A0012345"}}},
		"empty":             {{}},
		"cheque sin plaza":  {{Cheque: &dto.ChequeDTO{NumeroCheque: "A0012345", Banco: "Banco", FechaCobro: "2026-03-20", Importe: dec("10")}}},
	}
	for name, medios := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Medios: medios})
			var ve *apperr.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}

	// a card expiring this month is still valid
	_, err := svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Medios: []dto.MedioPagoDTO{credito("03/26", 1, "100")}})
	require.NoError(t, err)

	var count int64
	require.NoError(t, repos.DB.Model(&models.Pago{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPagoFacturaAnulada(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestServices(t)
	f := facturaPendiente(t, svc)

	_, err := svc.Facturas.GenerarNotaCredito(ctx, []uint{f.ID})
	require.NoError(t, err)

	_, err = svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: f.ID, Medios: []dto.MedioPagoDTO{efectivo("2420")}})
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = svc.Pagos.Registrar(ctx, dto.NuevoPagoRequest{FacturaID: 999, Medios: []dto.MedioPagoDTO{efectivo("10")}})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
