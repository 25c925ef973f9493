package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/utils"
)

type ReservaService struct {
	repos *repositories.Repositories
	opts  Opciones
}

func NewReservaService(repos *repositories.Repositories, opts Opciones) *ReservaService {
	return &ReservaService{repos: repos, opts: opts.withDefaults()}
}

type rangoPedido struct {
	numero int
	rango  Rango
}

func (s *ReservaService) validar(req dto.NuevaReservaRequest) ([]rangoPedido, error) {
	var problemas []string
	problemas = append(problemas, requerido(req.Nombre, "nombre")...)
	problemas = append(problemas, requerido(req.Apellido, "apellido")...)
	problemas = append(problemas, requerido(req.Telefono, "teléfono")...)
	if len(req.Habitaciones) == 0 {
		problemas = append(problemas, "debe indicar al menos una habitación")
	}

	pedidos := make([]rangoPedido, 0, len(req.Habitaciones))
	for i, h := range req.Habitaciones {
		if h.Numero <= 0 {
			problemas = append(problemas, fmt.Sprintf("habitaciones[%d]: número inválido", i))
			continue
		}
		rango, p := ParseRango(h.Desde, h.Hasta, s.opts.MaxDiasRango)
		if len(p) > 0 {
			for _, msg := range p {
				problemas = append(problemas, fmt.Sprintf("habitación %d: %s", h.Numero, msg))
			}
			continue
		}
		for _, prev := range pedidos {
			if prev.numero == h.Numero && prev.rango.Solapa(rango) {
				problemas = append(problemas, fmt.Sprintf("habitación %d: rangos repetidos en el mismo pedido", h.Numero))
			}
		}
		pedidos = append(pedidos, rangoPedido{numero: h.Numero, rango: rango})
	}
	return pedidos, apperr.Validation(problemas...)
}

// Crear books every requested room range in one transaction. A range that intersects
// an active reservation or stay of its room aborts the whole request.
func (s *ReservaService) Crear(ctx context.Context, req dto.NuevaReservaRequest) ([]models.Reserva, error) {
	pedidos, err := s.validar(req)
	if err != nil {
		return nil, err
	}

	var creadas []models.Reserva
	err = s.repos.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.repos.WithTx(tx)
		creadas = creadas[:0]
		for _, p := range pedidos {
			h, err := repos.Habitaciones.FindByNumero(ctx, p.numero)
			if err != nil {
				return err
			}
			if h.Estado == models.EstadoFueraDeServicio {
				return apperr.Conflict("la habitación %d está fuera de servicio", h.Numero)
			}
			libre, err := habitacionLibre(ctx, repos, h.ID, p.rango, nil)
			if err != nil {
				return err
			}
			if !libre {
				return apperr.Conflict("la habitación %d no está disponible entre %s y %s",
					h.Numero, p.rango.Desde.Format(utils.LayoutFecha), p.rango.Hasta.Format(utils.LayoutFecha))
			}

			r := models.Reserva{
				HabitacionID: h.ID,
				FechaInicio:  p.rango.Desde,
				FechaFin:     p.rango.Hasta,
				Estado:       models.ReservaActiva,
				Nombre:       strings.TrimSpace(req.Nombre),
				Apellido:     strings.ToUpper(strings.TrimSpace(req.Apellido)),
				Telefono:     strings.TrimSpace(req.Telefono),
			}
			if err := repos.Reservas.Create(ctx, &r); err != nil {
				return err
			}
			r.Habitacion = *h
			creadas = append(creadas, r)
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ Reserva rechazada para %s: %v", req.Apellido, err)
		return nil, err
	}
	log.Printf("✅ %d reserva(s) creadas para %s", len(creadas), req.Apellido)
	return creadas, nil
}

func (s *ReservaService) Buscar(ctx context.Context, apellido, nombre string) ([]models.Reserva, error) {
	if err := apperr.Validation(requerido(apellido, "apellido")...); err != nil {
		return nil, err
	}
	return s.repos.Reservas.Search(ctx, apellido, nombre)
}

// Cancelar moves every listed active reservation to CANCELADA, or none of them.
func (s *ReservaService) Cancelar(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return apperr.Validation("debe indicar al menos una reserva")
	}
	return s.repos.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.repos.WithTx(tx)
		for _, id := range ids {
			r, err := repos.Reservas.FindByID(ctx, id)
			if err != nil {
				return err
			}
			if r.Estado != models.ReservaActiva {
				return apperr.Conflict("la reserva %d está %s", id, strings.ToLower(r.Estado))
			}
			if err := repos.Reservas.UpdateEstado(ctx, id, models.ReservaCancelada); err != nil {
				return err
			}
		}
		return nil
	})
}
