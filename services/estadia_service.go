package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/utils"
)

const mayoriaDeEdad = 18

type EstadiaService struct {
	repos *repositories.Repositories
	opts  Opciones
}

func NewEstadiaService(repos *repositories.Repositories, opts Opciones) *EstadiaService {
	return &EstadiaService{repos: repos, opts: opts.withDefaults()}
}

type documento struct {
	tipo, numero string
}

func (d documento) String() string { return d.tipo + " " + d.numero }

type datosCheckIn struct {
	rango         Rango
	responsable   documento
	acompaniantes []documento
}

func (s *EstadiaService) validar(req dto.NuevaEstadiaRequest) (datosCheckIn, error) {
	var ci datosCheckIn
	var problemas []string

	if req.Numero <= 0 {
		problemas = append(problemas, "número de habitación inválido")
	}
	rango, p := ParseRango(req.Desde, req.Hasta, s.opts.MaxDiasRango)
	problemas = append(problemas, p...)
	ci.rango = rango

	tipo, numero, p := normalizarDocumento(req.Responsable)
	problemas = append(problemas, p...)
	ci.responsable = documento{tipo, numero}

	vistos := map[documento]bool{ci.responsable: true}
	for i, ref := range req.Acompaniantes {
		tipo, numero, p := normalizarDocumento(ref)
		if len(p) > 0 {
			for _, msg := range p {
				problemas = append(problemas, fmt.Sprintf("acompañante %d: %s", i+1, msg))
			}
			continue
		}
		doc := documento{tipo, numero}
		if vistos[doc] {
			problemas = append(problemas, fmt.Sprintf("el huésped %s figura más de una vez", doc))
			continue
		}
		vistos[doc] = true
		ci.acompaniantes = append(ci.acompaniantes, doc)
	}
	return ci, apperr.Validation(problemas...)
}

// CheckIn registers the occupancy of a room. Every rule is checked before any write;
// the stay, its guest rows, the reservation taken and the room state are written in
// one transaction.
func (s *EstadiaService) CheckIn(ctx context.Context, req dto.NuevaEstadiaRequest) (*models.Estadia, error) {
	ci, err := s.validar(req)
	if err != nil {
		return nil, err
	}

	var estadia *models.Estadia
	err = s.repos.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.repos.WithTx(tx)

		h, err := repos.Habitaciones.FindByNumero(ctx, req.Numero)
		if err != nil {
			return err
		}
		if h.Estado == models.EstadoFueraDeServicio {
			return apperr.Conflict("la habitación %d está fuera de servicio", h.Numero)
		}
		if ocupantes := 1 + len(ci.acompaniantes); ocupantes > h.Capacidad {
			return apperr.Validation(fmt.Sprintf("la habitación %d admite %d huéspedes y se indicaron %d", h.Numero, h.Capacidad, ocupantes))
		}

		responsable, err := repos.Huespedes.FindByDocumento(ctx, ci.responsable.tipo, ci.responsable.numero)
		if err != nil {
			return err
		}
		if responsable.FechaNacimiento != nil && utils.Edad(*responsable.FechaNacimiento, ci.rango.Desde) < mayoriaDeEdad {
			return apperr.Validation(fmt.Sprintf("el responsable %s debe ser mayor de edad", ci.responsable))
		}

		if req.ReservaID != nil {
			reserva, err := repos.Reservas.FindByID(ctx, *req.ReservaID)
			if err != nil {
				return err
			}
			if reserva.Estado != models.ReservaActiva {
				return apperr.Conflict("la reserva %d está %s", reserva.ID, strings.ToLower(reserva.Estado))
			}
			if reserva.HabitacionID != h.ID {
				return apperr.Conflict("la reserva %d corresponde a la habitación %d", reserva.ID, reserva.Habitacion.Numero)
			}
			reservado := Rango{Desde: utils.SoloFecha(reserva.FechaInicio), Hasta: utils.SoloFecha(reserva.FechaFin)}
			if !reservado.Solapa(ci.rango) {
				return apperr.Conflict("la reserva %d es del %s al %s y no cubre la estadía pedida", reserva.ID,
					reservado.Desde.Format(utils.LayoutFecha), reservado.Hasta.Format(utils.LayoutFecha))
			}
		}

		ocupada, err := repos.Estadias.ExisteSolapamiento(ctx, h.ID, ci.rango.Desde, ci.rango.Hasta)
		if err != nil {
			return err
		}
		if ocupada {
			return apperr.Conflict("la habitación %d está ocupada en el rango pedido", h.Numero)
		}
		if !req.OcuparIgual {
			reservada, err := repos.Reservas.ExisteSolapamiento(ctx, h.ID, ci.rango.Desde, ci.rango.Hasta, req.ReservaID)
			if err != nil {
				return err
			}
			if reservada {
				return apperr.Conflict("la habitación %d tiene reservas en el rango pedido", h.Numero)
			}
		}

		filas := []models.EstadiaHuesped{{HuespedID: responsable.ID, EsResponsable: true}}
		for _, doc := range ci.acompaniantes {
			acomp, err := repos.Huespedes.FindByDocumento(ctx, doc.tipo, doc.numero)
			if err != nil {
				return err
			}
			ocupado, err := repos.Estadias.HuespedOcupado(ctx, doc.tipo, doc.numero, ci.rango.Desde, ci.rango.Hasta)
			if err != nil {
				return err
			}
			if ocupado {
				return apperr.Conflict("el huésped %s (%s) ya se aloja en otra habitación en esas fechas", acomp.NombreCompleto(), doc)
			}
			filas = append(filas, models.EstadiaHuesped{HuespedID: acomp.ID})
		}

		e := &models.Estadia{
			HabitacionID:  h.ID,
			ReservaID:     req.ReservaID,
			FechaCheckIn:  ci.rango.Desde,
			FechaCheckOut: ci.rango.Hasta,
			Valor:         h.CostoNoche.Mul(decimal.NewFromInt(int64(ci.rango.Noches()))).Round(2),
			Estado:        models.EstadiaActiva,
		}
		if err := repos.Estadias.Create(ctx, e, filas); err != nil {
			return err
		}
		if req.ReservaID != nil {
			if err := repos.Reservas.UpdateEstado(ctx, *req.ReservaID, models.ReservaEfectivizada); err != nil {
				return err
			}
		}
		if err := repos.Habitaciones.UpdateEstado(ctx, h.ID, models.EstadoOcupada); err != nil {
			return err
		}

		estadia, err = repos.Estadias.FindByID(ctx, e.ID)
		return err
	})
	if err != nil {
		log.Printf("❌ Check-in rechazado en habitación %d: %v", req.Numero, err)
		return nil, err
	}
	log.Printf("✅ Check-in estadía %d en habitación %d (%d huéspedes)", estadia.ID, req.Numero, len(estadia.Huespedes))
	return estadia, nil
}

func (s *EstadiaService) Obtener(ctx context.Context, id uint) (*models.Estadia, error) {
	return s.repos.Estadias.FindByID(ctx, id)
}

func (s *EstadiaService) ActivaPorHabitacion(ctx context.Context, numero int) (*models.Estadia, error) {
	h, err := s.repos.Habitaciones.FindByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	return s.repos.Estadias.ActivaPorHabitacion(ctx, h.ID)
}
