package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/utils"
)

// Check-out limits, in minutes after midnight.
const (
	horaCheckOut       = 11 * 60
	horaCheckOutTardio = 18 * 60
)

type FacturaService struct {
	repos *repositories.Repositories
	opts  Opciones
}

func NewFacturaService(repos *repositories.Repositories, opts Opciones) *FacturaService {
	return &FacturaService{repos: repos, opts: opts.withDefaults()}
}

// liquidacion is the billable outcome of a stay at a given departure.
type liquidacion struct {
	salida time.Time
	items  []models.ItemFactura
	neto   decimal.Decimal
	iva    decimal.Decimal
	total  decimal.Decimal
}

func (s *FacturaService) liquidar(e *models.Estadia, horaSalida string) (*liquidacion, error) {
	hoy := utils.SoloFecha(s.opts.Now())
	noches := utils.Noches(e.FechaCheckIn, hoy)
	if noches < 1 {
		noches = 1
	}
	tarifa := e.Habitacion.CostoNoche
	l := &liquidacion{salida: e.FechaCheckIn.AddDate(0, 0, noches)}

	alojamiento := tarifa.Mul(decimal.NewFromInt(int64(noches))).Round(2)
	l.items = append(l.items, models.ItemFactura{
		Descripcion:    fmt.Sprintf("Alojamiento habitación %d (%s)", e.Habitacion.Numero, e.Habitacion.Tipo),
		Cantidad:       noches,
		PrecioUnitario: tarifa,
		Subtotal:       alojamiento,
	})
	l.neto = alojamiento

	if strings.TrimSpace(horaSalida) != "" {
		minutos, err := utils.ParseHora(horaSalida)
		if err != nil {
			return nil, apperr.Validation(err.Error())
		}
		var recargo decimal.Decimal
		var desc string
		switch {
		case minutos > horaCheckOutTardio:
			recargo, desc = tarifa, "Recargo salida posterior a las 18:00"
		case minutos > horaCheckOut:
			recargo, desc = tarifa.Div(decimal.NewFromInt(2)).Round(2), "Recargo salida posterior a las 11:00"
		}
		if !recargo.IsZero() {
			l.items = append(l.items, models.ItemFactura{Descripcion: desc, Cantidad: 1, PrecioUnitario: recargo, Subtotal: recargo})
			l.neto = l.neto.Add(recargo)
		}
	}

	l.iva = l.neto.Mul(s.opts.AlicuotaIVA).Round(2)
	l.total = l.neto.Add(l.iva)
	return l, nil
}

func ocupantes(e *models.Estadia, at time.Time) []dto.OcupanteDTO {
	out := make([]dto.OcupanteDTO, 0, len(e.Huespedes))
	for _, eh := range e.Huespedes {
		h := eh.Huesped
		out = append(out, dto.OcupanteDTO{
			TipoDocumento:   h.TipoDocumento,
			NumeroDocumento: h.NumeroDocumento,
			Nombre:          h.NombreCompleto(),
			EsResponsable:   eh.EsResponsable,
			MayorDeEdad:     esMayor(&h, at),
		})
	}
	return out
}

// esMayor treats a guest without birth date as an adult.
func esMayor(h *models.Huesped, at time.Time) bool {
	return h.FechaNacimiento == nil || utils.Edad(*h.FechaNacimiento, at) >= mayoriaDeEdad
}

// CalcularDetalle previews the invoice for the active stay of a room.
func (s *FacturaService) CalcularDetalle(ctx context.Context, req dto.DetalleFacturaRequest) (*dto.DetalleFacturaResponse, error) {
	h, err := s.repos.Habitaciones.FindByNumero(ctx, req.Numero)
	if err != nil {
		return nil, err
	}
	activa, err := s.repos.Estadias.ActivaPorHabitacion(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	e, err := s.repos.Estadias.FindByID(ctx, activa.ID)
	if err != nil {
		return nil, err
	}
	l, err := s.liquidar(e, req.HoraSalida)
	if err != nil {
		return nil, err
	}

	resp := &dto.DetalleFacturaResponse{
		EstadiaID:   e.ID,
		Numero:      h.Numero,
		Ocupantes:   ocupantes(e, utils.SoloFecha(s.opts.Now())),
		ImporteNeto: l.neto,
		IVA:         l.iva,
		Total:       l.total,
	}
	for _, it := range l.items {
		resp.Items = append(resp.Items, dto.ItemDetalle(it))
	}
	return resp, nil
}

func (s *FacturaService) validarFacturacion(req dto.NuevaFacturaRequest) (*documento, string, error) {
	cuit := strings.TrimSpace(req.CUIT)
	switch {
	case req.Huesped == nil && cuit == "":
		return nil, "", apperr.Validation("debe indicar el huésped responsable o el CUIT de un tercero")
	case req.Huesped != nil && cuit != "":
		return nil, "", apperr.Validation("indique el huésped responsable o un CUIT, no ambos")
	case cuit != "":
		if !cuitValido(cuit) {
			return nil, "", apperr.Validation(fmt.Sprintf("CUIT %q inválido", cuit))
		}
		return nil, normalizarCUIT(cuit), nil
	}
	tipo, numero, problemas := normalizarDocumento(*req.Huesped)
	if err := apperr.Validation(problemas...); err != nil {
		return nil, "", err
	}
	return &documento{tipo, numero}, "", nil
}

// Facturar issues the invoice of a stay and closes it: invoice row and number, stay
// FINALIZADA, room DISPONIBLE, all in one transaction.
func (s *FacturaService) Facturar(ctx context.Context, req dto.NuevaFacturaRequest) (*models.Factura, error) {
	doc, cuit, err := s.validarFacturacion(req)
	if err != nil {
		return nil, err
	}

	var facturaID uint
	err = s.repos.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.repos.WithTx(tx)

		e, err := repos.Estadias.FindByID(ctx, req.EstadiaID)
		if err != nil {
			return err
		}
		if e.Estado != models.EstadiaActiva {
			return apperr.Conflict("la estadía %d ya fue facturada", e.ID)
		}

		var rp *models.ResponsablePago
		if doc != nil {
			var ocupante *models.Huesped
			for i := range e.Huespedes {
				h := &e.Huespedes[i].Huesped
				if h.TipoDocumento == doc.tipo && h.NumeroDocumento == doc.numero {
					ocupante = h
				}
			}
			if ocupante == nil {
				return apperr.Validation(fmt.Sprintf("el huésped %s no se aloja en la estadía %d", doc, e.ID))
			}
			if !esMayor(ocupante, utils.SoloFecha(s.opts.Now())) {
				return apperr.Validation(fmt.Sprintf("el responsable de pago %s debe ser mayor de edad", ocupante.NombreCompleto()))
			}
			if rp, err = repos.Responsables.FindOrCreateFisica(ctx, ocupante); err != nil {
				return err
			}
		} else if rp, err = repos.Responsables.FindByCUIT(ctx, cuit); err != nil {
			return err
		}

		l, err := s.liquidar(e, req.HoraSalida)
		if err != nil {
			return err
		}
		detalle, err := json.Marshal(l.items)
		if err != nil {
			return fmt.Errorf("serializar detalle: %w", err)
		}

		f := &models.Factura{
			FechaEmision:      s.opts.Now().UTC(),
			ImporteNeto:       l.neto,
			IVA:               l.iva,
			ImporteTotal:      l.total,
			Estado:            models.FacturaPendiente,
			Tipo:              tipoFactura(rp),
			Detalle:           datatypes.JSON(detalle),
			EstadiaID:         e.ID,
			ResponsablePagoID: rp.ID,
		}
		if err := repos.Facturas.Create(ctx, f, s.opts.PuntoVenta); err != nil {
			return err
		}

		e.FechaCheckOut = l.salida
		e.Valor = l.neto
		if err := repos.Estadias.Finalizar(ctx, e); err != nil {
			return err
		}
		if err := repos.Habitaciones.UpdateEstado(ctx, e.HabitacionID, models.EstadoDisponible); err != nil {
			return err
		}
		facturaID = f.ID
		return nil
	})
	if err != nil {
		log.Printf("❌ Facturación de estadía %d rechazada: %v", req.EstadiaID, err)
		return nil, err
	}

	f, err := s.repos.Facturas.FindByID(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	log.Printf("🧾 Factura %s tipo %s emitida a %s por %s", *f.Numero, f.Tipo, f.ResponsablePago.RazonSocial(), f.ImporteTotal.StringFixed(2))
	return f, nil
}

func tipoFactura(rp *models.ResponsablePago) string {
	if rp.PosicionIVA() == models.IVAResponsableInscripto {
		return models.FacturaTipoA
	}
	return models.FacturaTipoB
}

func (s *FacturaService) Obtener(ctx context.Context, id uint) (*models.Factura, error) {
	return s.repos.Facturas.FindByID(ctx, id)
}

func (s *FacturaService) PendientesDe(ctx context.Context, responsableID uint) ([]models.Factura, error) {
	if _, err := s.repos.Responsables.FindByID(ctx, responsableID); err != nil {
		return nil, err
	}
	return s.repos.Facturas.Pendientes(ctx, responsableID)
}

// PDF renders the invoice document.
func (s *FacturaService) PDF(ctx context.Context, id uint) ([]byte, error) {
	f, err := s.repos.Facturas.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var items []models.ItemFactura
	if len(f.Detalle) > 0 {
		if err := json.Unmarshal(f.Detalle, &items); err != nil {
			return nil, fmt.Errorf("leer detalle de factura %d: %w", id, err)
		}
	}
	var buf bytes.Buffer
	if err := escribirFacturaPDF(&buf, f, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerarNotaCredito cancels pending invoices of a single billing party with one
// credit note for their combined amount.
func (s *FacturaService) GenerarNotaCredito(ctx context.Context, ids []uint) (*models.NotaCredito, error) {
	ids = unicos(ids)
	if len(ids) == 0 {
		return nil, apperr.Validation("debe indicar al menos una factura")
	}

	var notaID uint
	err := s.repos.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.repos.WithTx(tx)
		facturas, err := repos.Facturas.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(facturas) != len(ids) {
			return apperr.NotFound("alguna de las facturas %v no existe", ids)
		}

		nc := &models.NotaCredito{Fecha: s.opts.Now().UTC()}
		for _, f := range facturas {
			if f.Estado != models.FacturaPendiente {
				return apperr.Conflict("la factura %d está %s", f.ID, strings.ToLower(f.Estado))
			}
			if f.ResponsablePagoID != facturas[0].ResponsablePagoID {
				return apperr.Validation("todas las facturas deben pertenecer al mismo responsable de pago")
			}
			nc.ImporteNeto = nc.ImporteNeto.Add(f.ImporteNeto)
			nc.IVA = nc.IVA.Add(f.IVA)
			nc.ImporteDevolucion = nc.ImporteDevolucion.Add(f.ImporteTotal)
		}

		if err := repos.NotasCredito.Create(ctx, nc, s.opts.PuntoVenta); err != nil {
			return err
		}
		if err := repos.Facturas.Anular(ctx, ids, nc.ID); err != nil {
			return err
		}
		notaID = nc.ID
		return nil
	})
	if err != nil {
		log.Printf("❌ Nota de crédito rechazada para facturas %v: %v", ids, err)
		return nil, err
	}
	nc, err := s.repos.NotasCredito.FindByID(ctx, notaID)
	if err != nil {
		return nil, err
	}
	log.Printf("🧾 Nota de crédito %s por %s anula %d factura(s)", *nc.Numero, nc.ImporteDevolucion.StringFixed(2), len(nc.Facturas))
	return nc, nil
}

func unicos(ids []uint) []uint {
	vistos := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 && !vistos[id] {
			vistos[id] = true
			out = append(out, id)
		}
	}
	return out
}
