package services

import (
	"context"
	"log"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/utils"
)

type HabitacionService struct {
	repos *repositories.Repositories
	opts  Opciones
}

func NewHabitacionService(repos *repositories.Repositories, opts Opciones) *HabitacionService {
	return &HabitacionService{repos: repos, opts: opts.withDefaults()}
}

func (s *HabitacionService) Crear(ctx context.Context, req dto.HabitacionRequest) (*models.Habitacion, error) {
	var problemas []string
	tipo, p := normalizarEnum(models.TiposHabitacion, req.Tipo, "tipo")
	problemas = append(problemas, p...)
	estado := models.EstadoDisponible
	if req.Estado != "" {
		estado, p = normalizarEnum(models.EstadosHabitacion, req.Estado, "estado")
		problemas = append(problemas, p...)
	}
	if req.Numero <= 0 {
		problemas = append(problemas, "el número de habitación debe ser positivo")
	}
	if req.Capacidad <= 0 {
		problemas = append(problemas, "la capacidad debe ser positiva")
	}
	if !req.CostoNoche.IsPositive() {
		problemas = append(problemas, "el costo por noche debe ser positivo")
	}
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}

	h := &models.Habitacion{
		Numero:     req.Numero,
		Tipo:       tipo,
		Capacidad:  req.Capacidad,
		Estado:     estado,
		CostoNoche: req.CostoNoche.Round(2),
	}
	if err := s.repos.Habitaciones.Create(ctx, h); err != nil {
		return nil, err
	}
	log.Printf("✅ Habitación %d creada (%s)", h.Numero, h.Tipo)
	return h, nil
}

func (s *HabitacionService) Listar(ctx context.Context) ([]models.Habitacion, error) {
	return s.repos.Habitaciones.FindAll(ctx)
}

func (s *HabitacionService) Obtener(ctx context.Context, numero int) (*models.Habitacion, error) {
	return s.repos.Habitaciones.FindByNumero(ctx, numero)
}

func (s *HabitacionService) CambiarEstado(ctx context.Context, numero int, estado string) (*models.Habitacion, error) {
	canon, problemas := normalizarEnum(models.EstadosHabitacion, estado, "estado")
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}
	h, err := s.repos.Habitaciones.FindByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Habitaciones.UpdateEstado(ctx, h.ID, canon); err != nil {
		return nil, err
	}
	h.Estado = canon
	return h, nil
}

// Disponible reports whether no active reservation or stay of the room intersects
// [desde, hasta). Recomputed on every call.
func (s *HabitacionService) Disponible(ctx context.Context, numero int, desde, hasta string) (*dto.DisponibilidadResponse, error) {
	rango, problemas := ParseRango(desde, hasta, s.opts.MaxDiasRango)
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}
	h, err := s.repos.Habitaciones.FindByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	libre, err := habitacionLibre(ctx, s.repos, h.ID, rango, nil)
	if err != nil {
		return nil, err
	}
	return &dto.DisponibilidadResponse{
		Numero:     numero,
		Desde:      rango.Desde.Format(utils.LayoutFecha),
		Hasta:      rango.Hasta.Format(utils.LayoutFecha),
		Disponible: libre && h.Estado != models.EstadoFueraDeServicio,
	}, nil
}

func habitacionLibre(ctx context.Context, repos *repositories.Repositories, habitacionID uint, r Rango, excluirReserva *uint) (bool, error) {
	reservada, err := repos.Reservas.ExisteSolapamiento(ctx, habitacionID, r.Desde, r.Hasta, excluirReserva)
	if err != nil || reservada {
		return false, err
	}
	ocupada, err := repos.Estadias.ExisteSolapamiento(ctx, habitacionID, r.Desde, r.Hasta)
	if err != nil {
		return false, err
	}
	return !ocupada, nil
}

// Grilla returns, for every room, the state of each day in [desde, hasta).
// A stay wins over a reservation on the same day.
func (s *HabitacionService) Grilla(ctx context.Context, desde, hasta string) ([]dto.GrillaHabitacion, error) {
	rango, problemas := ParseRango(desde, hasta, s.opts.MaxDiasRango)
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}

	habitaciones, err := s.repos.Habitaciones.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reservas, err := s.repos.Reservas.EnRango(ctx, rango.Desde, rango.Hasta)
	if err != nil {
		return nil, err
	}
	estadias, err := s.repos.Estadias.EnRango(ctx, rango.Desde, rango.Hasta)
	if err != nil {
		return nil, err
	}

	dias := utils.Dias(rango.Desde, rango.Hasta)
	grilla := make([]dto.GrillaHabitacion, 0, len(habitaciones))
	index := make(map[uint]int, len(habitaciones))
	for _, h := range habitaciones {
		fila := dto.GrillaHabitacion{Numero: h.Numero, Tipo: h.Tipo, Dias: make(map[string]string, len(dias))}
		base := models.EstadoDisponible
		if h.Estado == models.EstadoFueraDeServicio {
			base = models.EstadoFueraDeServicio
		}
		for _, d := range dias {
			fila.Dias[d.Format(utils.LayoutFecha)] = base
		}
		index[h.ID] = len(grilla)
		grilla = append(grilla, fila)
	}

	marcar := func(habitacionID uint, ocupacion Rango, estado string) {
		i, ok := index[habitacionID]
		if !ok {
			return
		}
		for _, d := range dias {
			if d.Before(ocupacion.Hasta) && !d.Before(ocupacion.Desde) {
				key := d.Format(utils.LayoutFecha)
				if cur := grilla[i].Dias[key]; cur != models.EstadoOcupada && cur != models.EstadoFueraDeServicio {
					grilla[i].Dias[key] = estado
				}
			}
		}
	}
	for _, r := range reservas {
		marcar(r.HabitacionID, Rango{Desde: utils.SoloFecha(r.FechaInicio), Hasta: utils.SoloFecha(r.FechaFin)}, models.EstadoReservada)
	}
	for _, e := range estadias {
		marcar(e.HabitacionID, Rango{Desde: utils.SoloFecha(e.FechaCheckIn), Hasta: utils.SoloFecha(e.FechaCheckOut)}, models.EstadoOcupada)
	}
	return grilla, nil
}
