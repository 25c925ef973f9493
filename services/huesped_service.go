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
	"hotel-gestion/utils"
)

type HuespedService struct {
	repos *repositories.Repositories
}

func NewHuespedService(repos *repositories.Repositories) *HuespedService {
	return &HuespedService{repos: repos}
}

// Buscar filters by any combination of document and name prefixes.
func (s *HuespedService) Buscar(ctx context.Context, f repositories.FiltroHuesped) ([]models.Huesped, error) {
	if f.TipoDocumento != "" {
		tipo, problemas := normalizarEnum(models.TiposDocumento, f.TipoDocumento, "tipo de documento")
		if err := apperr.Validation(problemas...); err != nil {
			return nil, err
		}
		f.TipoDocumento = tipo
	}
	return s.repos.Huespedes.Search(ctx, f)
}

func (s *HuespedService) Obtener(ctx context.Context, tipo, numero string) (*models.Huesped, error) {
	t, n, problemas := normalizarDocumento(dto.DocumentoRef{TipoDocumento: tipo, NumeroDocumento: numero})
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}
	return s.repos.Huespedes.FindByDocumento(ctx, t, n)
}

func (s *HuespedService) mapear(req dto.HuespedRequest) (*models.Huesped, error) {
	var problemas []string
	tipo, numero, p := normalizarDocumento(dto.DocumentoRef{TipoDocumento: req.TipoDocumento, NumeroDocumento: req.NumeroDocumento})
	problemas = append(problemas, p...)
	problemas = append(problemas, requerido(req.Apellido, "apellido")...)
	problemas = append(problemas, requerido(req.Nombres, "nombres")...)

	posicion := models.IVAConsumidorFinal
	if strings.TrimSpace(req.PosicionIVA) != "" {
		v, p := normalizarEnum(models.PosicionesIVA, req.PosicionIVA, "posición frente al IVA")
		problemas = append(problemas, p...)
		posicion = v
	}

	cuit := ""
	if strings.TrimSpace(req.CUIT) != "" {
		if !cuitValido(req.CUIT) {
			problemas = append(problemas, fmt.Sprintf("CUIT %q inválido", req.CUIT))
		}
		cuit = normalizarCUIT(req.CUIT)
	} else if posicion == models.IVAResponsableInscripto {
		problemas = append(problemas, "el CUIT es obligatorio para responsables inscriptos")
	}

	h := &models.Huesped{
		TipoDocumento:   tipo,
		NumeroDocumento: numero,
		Apellido:        strings.ToUpper(strings.TrimSpace(req.Apellido)),
		Nombres:         strings.TrimSpace(req.Nombres),
		CUIT:            cuit,
		PosicionIVA:     posicion,
		Nacionalidad:    strings.TrimSpace(req.Nacionalidad),
	}

	if strings.TrimSpace(req.FechaNacimiento) != "" {
		nac, err := utils.ParseFecha(req.FechaNacimiento)
		if err != nil {
			problemas = append(problemas, "fecha de nacimiento: "+err.Error())
		} else {
			h.FechaNacimiento = &nac
		}
	}

	if req.Direccion != nil {
		d, p := mapearDireccion(*req.Direccion)
		problemas = append(problemas, p...)
		h.Direccion = d
	}

	for _, t := range req.Telefonos {
		if t = strings.TrimSpace(t); t != "" {
			h.Telefonos = append(h.Telefonos, models.TelefonoHuesped{Telefono: t})
		}
	}
	for _, e := range req.Emails {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !emailValido(e) {
			problemas = append(problemas, fmt.Sprintf("email %q inválido", e))
		}
		h.Emails = append(h.Emails, models.EmailHuesped{Email: strings.ToLower(e)})
	}
	for _, o := range req.Ocupaciones {
		if o = strings.TrimSpace(o); o != "" {
			h.Ocupaciones = append(h.Ocupaciones, models.OcupacionHuesped{Ocupacion: o})
		}
	}
	return h, apperr.Validation(problemas...)
}

func mapearDireccion(d dto.DireccionDTO) (*models.Direccion, []string) {
	var problemas []string
	problemas = append(problemas, requerido(d.Calle, "calle")...)
	problemas = append(problemas, requerido(d.Numero, "número de calle")...)
	return &models.Direccion{
		Calle:        strings.TrimSpace(d.Calle),
		Numero:       strings.TrimSpace(d.Numero),
		Departamento: strings.TrimSpace(d.Departamento),
		Piso:         strings.TrimSpace(d.Piso),
		CodigoPostal: strings.TrimSpace(d.CodigoPostal),
		Localidad:    strings.TrimSpace(d.Localidad),
		Provincia:    strings.TrimSpace(d.Provincia),
		Pais:         strings.TrimSpace(d.Pais),
	}, problemas
}

// Guardar creates or updates the guest identified by its document.
func (s *HuespedService) Guardar(ctx context.Context, req dto.HuespedRequest) (*dto.HuespedGuardadoResponse, error) {
	h, err := s.mapear(req)
	if err != nil {
		return nil, err
	}
	creado, err := s.repos.Huespedes.Upsert(ctx, h)
	if err != nil {
		log.Printf("❌ Error guardando huésped %s %s: %v", h.TipoDocumento, h.NumeroDocumento, err)
		return nil, err
	}
	if creado {
		log.Printf("✅ Huésped %s %s creado (id %d)", h.TipoDocumento, h.NumeroDocumento, h.ID)
	} else {
		log.Printf("✏️ Huésped %s %s actualizado", h.TipoDocumento, h.NumeroDocumento)
	}
	return &dto.HuespedGuardadoResponse{ID: h.ID, Creado: creado}, nil
}

// Eliminar refuses guests that ever stayed in the hotel.
func (s *HuespedService) Eliminar(ctx context.Context, tipo, numero string) error {
	h, err := s.Obtener(ctx, tipo, numero)
	if err != nil {
		return err
	}
	n, err := s.repos.Estadias.CountByHuesped(ctx, h.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.Conflict("el huésped %s no puede eliminarse: tiene %d estadía(s) registradas", h.NombreCompleto(), n)
	}
	if err := s.repos.Huespedes.Delete(ctx, h); err != nil {
		return err
	}
	log.Printf("🗑️ Huésped %s %s eliminado", h.TipoDocumento, h.NumeroDocumento)
	return nil
}
