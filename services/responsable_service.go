package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
)

type ResponsableService struct {
	repos *repositories.Repositories
}

func NewResponsableService(repos *repositories.Repositories) *ResponsableService {
	return &ResponsableService{repos: repos}
}

func (s *ResponsableService) CrearJuridica(ctx context.Context, req dto.PersonaJuridicaRequest) (*models.ResponsablePago, error) {
	var problemas []string
	problemas = append(problemas, requerido(req.RazonSocial, "razón social")...)
	if !cuitValido(strings.TrimSpace(req.CUIT)) {
		problemas = append(problemas, fmt.Sprintf("CUIT %q inválido", req.CUIT))
	}
	pj := &models.PersonaJuridica{
		RazonSocial: strings.TrimSpace(req.RazonSocial),
		CUIT:        normalizarCUIT(req.CUIT),
		Telefono:    strings.TrimSpace(req.Telefono),
	}
	if req.Direccion != nil {
		d, p := mapearDireccion(*req.Direccion)
		problemas = append(problemas, p...)
		pj.Direccion = d
	}
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}

	rp, err := s.repos.Responsables.CreateJuridica(ctx, pj)
	if err != nil {
		log.Printf("❌ Error creando responsable %s: %v", pj.CUIT, err)
		return nil, err
	}
	log.Printf("✅ Responsable de pago %s (%s) creado", pj.RazonSocial, pj.CUIT)
	return rp, nil
}

// ParaHuesped returns the guest's own billing party, created on first use.
func (s *ResponsableService) ParaHuesped(ctx context.Context, h *models.Huesped) (*models.ResponsablePago, error) {
	return s.repos.Responsables.FindOrCreateFisica(ctx, h)
}

func (s *ResponsableService) BuscarPorCUIT(ctx context.Context, cuit string) (*models.ResponsablePago, error) {
	if !cuitValido(strings.TrimSpace(cuit)) {
		return nil, apperr.Validation(fmt.Sprintf("CUIT %q inválido", cuit))
	}
	return s.repos.Responsables.FindByCUIT(ctx, normalizarCUIT(cuit))
}

func (s *ResponsableService) Buscar(ctx context.Context, razonSocial string) ([]models.ResponsablePago, error) {
	return s.repos.Responsables.SearchJuridicas(ctx, strings.TrimSpace(razonSocial))
}

func (s *ResponsableService) Obtener(ctx context.Context, id uint) (*models.ResponsablePago, error) {
	return s.repos.Responsables.FindByID(ctx, id)
}
