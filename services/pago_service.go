package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/utils"
)

var (
	tarjetaPattern = regexp.MustCompile(`^\d{12,19}$`)
	chequePattern  = regexp.MustCompile(`^[A-Za-z0-9]{4,32}$`)
)

type PagoService struct {
	repos *repositories.Repositories
	opts  Opciones
}

func NewPagoService(repos *repositories.Repositories, opts Opciones) *PagoService {
	return &PagoService{repos: repos, opts: opts.withDefaults()}
}

func importePositivo(v decimal.Decimal, campo string) []string {
	if !v.IsPositive() {
		return []string{campo + ": el importe debe ser mayor a cero"}
	}
	return nil
}

// vencimientoVigente reads MM/AA; a card is valid through the last day of that month.
func vencimientoVigente(raw string, hoy time.Time) (string, []string) {
	t, err := time.Parse("01/06", strings.TrimSpace(raw))
	if err != nil {
		return "", []string{fmt.Sprintf("vencimiento %q inválido: se espera MM/AA", raw)}
	}
	finDeMes := t.AddDate(0, 1, 0)
	if !finDeMes.After(utils.SoloFecha(hoy)) {
		return "", []string{fmt.Sprintf("la tarjeta venció en %s", t.Format("01/2006"))}
	}
	return t.Format("01/06"), nil
}

func (s *PagoService) mapearTarjeta(t *dto.TarjetaDTO, campo string) (string, string, string, string, []string) {
	var problemas []string
	numero := strings.NewReplacer(" ", "", "-", "").Replace(t.NumeroTarjeta)
	if !tarjetaPattern.MatchString(numero) {
		problemas = append(problemas, campo+": número de tarjeta inválido")
	}
	problemas = append(problemas, requerido(t.Banco, campo+": banco")...)
	problemas = append(problemas, requerido(t.Titular, campo+": titular")...)
	venc, p := vencimientoVigente(t.Vencimiento, s.opts.Now())
	for _, msg := range p {
		problemas = append(problemas, campo+": "+msg)
	}
	problemas = append(problemas, importePositivo(t.Importe, campo)...)
	return numero, strings.TrimSpace(t.Banco), strings.ToUpper(strings.TrimSpace(t.Titular)), venc, problemas
}

// mapearMedios builds one MedioPago per entry, each carrying exactly one instrument.
func (s *PagoService) mapearMedios(req dto.NuevoPagoRequest, moneda string) ([]models.MedioPago, decimal.Decimal, []string) {
	var problemas []string
	medios := make([]models.MedioPago, 0, len(req.Medios))
	suma := decimal.Zero

	for i, m := range req.Medios {
		campo := fmt.Sprintf("medios[%d]", i)
		n := 0
		for _, presente := range []bool{m.Efectivo != nil, m.Cheque != nil, m.TarjetaDebito != nil, m.TarjetaCredito != nil} {
			if presente {
				n++
			}
		}
		if n != 1 {
			problemas = append(problemas, campo+": debe indicar exactamente un instrumento")
			continue
		}

		var mp models.MedioPago
		switch {
		case m.Efectivo != nil:
			problemas = append(problemas, importePositivo(m.Efectivo.Importe, campo)...)
			mp = models.MedioPago{
				Tipo:     models.MedioEfectivo,
				Importe:  m.Efectivo.Importe,
				Efectivo: &models.Efectivo{Importe: m.Efectivo.Importe, Moneda: moneda},
			}
		case m.Cheque != nil:
			c := m.Cheque
			numero := strings.TrimSpace(c.NumeroCheque)
			if !chequePattern.MatchString(numero) {
				problemas = append(problemas, campo+": número de cheque inválido")
			}
			problemas = append(problemas, requerido(c.Banco, campo+": banco")...)
			problemas = append(problemas, requerido(c.Plaza, campo+": plaza")...)
			problemas = append(problemas, importePositivo(c.Importe, campo)...)
			cobro, err := utils.ParseFecha(c.FechaCobro)
			if err != nil {
				problemas = append(problemas, campo+": fecha de cobro: "+err.Error())
			}
			mp = models.MedioPago{
				Tipo:    models.MedioCheque,
				Importe: c.Importe,
				Cheque: &models.Cheque{
					NumeroCheque: numero,
					Banco:        strings.TrimSpace(c.Banco),
					Plaza:        strings.TrimSpace(c.Plaza),
					FechaCobro:   cobro,
				},
			}
		case m.TarjetaDebito != nil:
			numero, banco, titular, venc, p := s.mapearTarjeta(m.TarjetaDebito, campo)
			problemas = append(problemas, p...)
			mp = models.MedioPago{
				Tipo:          models.MedioTarjetaDebito,
				Importe:       m.TarjetaDebito.Importe,
				TarjetaDebito: &models.TarjetaDebito{NumeroTarjeta: numero, Banco: banco, Titular: titular, Vencimiento: venc},
			}
		case m.TarjetaCredito != nil:
			numero, banco, titular, venc, p := s.mapearTarjeta(m.TarjetaCredito, campo)
			problemas = append(problemas, p...)
			if m.TarjetaCredito.Cuotas < 1 {
				problemas = append(problemas, campo+": la cantidad de cuotas debe ser al menos 1")
			}
			mp = models.MedioPago{
				Tipo:           models.MedioTarjetaCredito,
				Importe:        m.TarjetaCredito.Importe,
				Cuotas:         m.TarjetaCredito.Cuotas,
				TarjetaCredito: &models.TarjetaCredito{NumeroTarjeta: numero, Banco: banco, Titular: titular, Vencimiento: venc},
			}
		}
		suma = suma.Add(mp.Importe)
		medios = append(medios, mp)
	}
	return medios, suma, problemas
}

// Registrar applies a payment to a pending invoice. Amounts are in the payment's
// currency and converted with cotizacion; any excess over the balance is change.
func (s *PagoService) Registrar(ctx context.Context, req dto.NuevoPagoRequest) (*dto.PagoResponse, error) {
	var problemas []string
	if len(req.Medios) == 0 {
		problemas = append(problemas, "debe indicar al menos un medio de pago")
	}
	moneda := models.MonedaPesos
	if strings.TrimSpace(req.Moneda) != "" {
		v, p := normalizarEnum(models.Monedas, req.Moneda, "moneda")
		problemas = append(problemas, p...)
		moneda = v
	}
	cotizacion := decimal.NewFromInt(1)
	if moneda != models.MonedaPesos {
		if !req.Cotizacion.IsPositive() {
			problemas = append(problemas, "la cotización debe ser mayor a cero")
		}
		cotizacion = req.Cotizacion
	}
	medios, suma, p := s.mapearMedios(req, moneda)
	problemas = append(problemas, p...)
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}

	resp := &dto.PagoResponse{}
	err := s.repos.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.repos.WithTx(tx)
		f, err := repos.Facturas.FindByID(ctx, req.FacturaID)
		if err != nil {
			return err
		}
		if f.Estado != models.FacturaPendiente {
			return apperr.Conflict("la factura %d está %s", f.ID, strings.ToLower(f.Estado))
		}
		aplicado, err := repos.Pagos.TotalAplicado(ctx, f.ID)
		if err != nil {
			return err
		}
		saldo := f.ImporteTotal.Sub(aplicado)

		importe := suma.Mul(cotizacion).Round(2)
		vuelto := decimal.Zero
		estado := models.FacturaPendiente
		if importe.GreaterThanOrEqual(saldo) {
			vuelto = importe.Sub(saldo)
			estado = models.FacturaPagada
		}

		pago := &models.Pago{
			FacturaID:  f.ID,
			Importe:    importe,
			Moneda:     moneda,
			Cotizacion: cotizacion,
			Vuelto:     vuelto,
			Fecha:      s.opts.Now().UTC(),
			Medios:     medios,
		}
		if err := repos.Pagos.Create(ctx, pago); err != nil {
			return err
		}
		if estado == models.FacturaPagada {
			if err := repos.Facturas.UpdateEstado(ctx, f.ID, estado); err != nil {
				return err
			}
		}

		resp.PagoID = pago.ID
		resp.Importe = importe
		resp.Vuelto = vuelto
		resp.Saldo = decimal.Max(saldo.Sub(importe), decimal.Zero)
		resp.EstadoFactura = estado
		return nil
	})
	if err != nil {
		log.Printf("❌ Pago rechazado para factura %d: %v", req.FacturaID, err)
		return nil, err
	}
	log.Printf("💰 Pago %d de $ %s aplicado a factura %d (saldo $ %s)", resp.PagoID, resp.Importe.StringFixed(2), req.FacturaID, resp.Saldo.StringFixed(2))
	return resp, nil
}

func (s *PagoService) DeFactura(ctx context.Context, facturaID uint) ([]models.Pago, error) {
	if _, err := s.repos.Facturas.FindByID(ctx, facturaID); err != nil {
		return nil, err
	}
	return s.repos.Pagos.FindByFactura(ctx, facturaID)
}
