package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type HuespedRepository struct {
	DB *gorm.DB
}

func NewHuespedRepository(db *gorm.DB) *HuespedRepository {
	return &HuespedRepository{DB: db}
}

// FiltroHuesped narrows Search; blank fields are ignored.
type FiltroHuesped struct {
	TipoDocumento   string
	NumeroDocumento string
	Apellido        string
	Nombres         string
}

func (r *HuespedRepository) preloadAll(db *gorm.DB) *gorm.DB {
	return db.Preload("Direccion").Preload("Telefonos").Preload("Emails").Preload("Ocupaciones")
}

func (r *HuespedRepository) FindByDocumento(ctx context.Context, tipo, numero string) (*models.Huesped, error) {
	var h models.Huesped
	err := r.preloadAll(r.DB.WithContext(ctx)).
		Where("tipo_documento = ? AND numero_documento = ?", tipo, numero).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("huésped %s %s", tipo, numero)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar huesped", err)
	}
	return &h, nil
}

func (r *HuespedRepository) FindByID(ctx context.Context, id uint) (*models.Huesped, error) {
	var h models.Huesped
	err := r.preloadAll(r.DB.WithContext(ctx)).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("huésped id %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar huesped", err)
	}
	return &h, nil
}

func (r *HuespedRepository) Search(ctx context.Context, f FiltroHuesped) ([]models.Huesped, error) {
	q := r.DB.WithContext(ctx).Model(&models.Huesped{})
	if f.TipoDocumento != "" {
		q = q.Where("tipo_documento = ?", f.TipoDocumento)
	}
	if n := strings.TrimSpace(f.NumeroDocumento); n != "" {
		q = q.Where("numero_documento = ?", n)
	}
	if a := strings.ToLower(strings.TrimSpace(f.Apellido)); a != "" {
		q = q.Where("LOWER(apellido) LIKE ?", a+"%")
	}
	if n := strings.ToLower(strings.TrimSpace(f.Nombres)); n != "" {
		q = q.Where("LOWER(nombres) LIKE ?", n+"%")
	}
	var list []models.Huesped
	if err := q.Order("apellido ASC, nombres ASC, id ASC").Find(&list).Error; err != nil {
		return nil, apperr.Persistence("buscar huespedes", err)
	}
	return list, nil
}

// Upsert writes the guest keyed by document: core row, address and the phone / email /
// occupation satellites, which are replaced. Any failing statement rolls back the whole
// write, core row included. It reports whether the guest was created.
func (r *HuespedRepository) Upsert(ctx context.Context, h *models.Huesped) (bool, error) {
	creado := false
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existente models.Huesped
		err := tx.Where("tipo_documento = ? AND numero_documento = ?", h.TipoDocumento, h.NumeroDocumento).
			First(&existente).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			creado = true
		case err != nil:
			return apperr.Persistence("buscar huesped", err)
		default:
			h.ID = existente.ID
			if h.DireccionID == nil {
				h.DireccionID = existente.DireccionID
			}
		}

		if h.Direccion != nil {
			h.Direccion.ID = 0
			if h.DireccionID != nil {
				h.Direccion.ID = *h.DireccionID
			}
			if err := tx.Save(h.Direccion).Error; err != nil {
				return apperr.Persistence("guardar direccion", err)
			}
			h.DireccionID = &h.Direccion.ID
		}

		core := tx.Omit("Direccion", "Telefonos", "Emails", "Ocupaciones")
		if creado {
			if err := core.Create(h).Error; err != nil {
				return apperr.Persistence("crear huesped", err)
			}
		} else {
			err := core.Model(&models.Huesped{}).Where("id = ?", h.ID).Updates(map[string]interface{}{
				"apellido":         h.Apellido,
				"nombres":          h.Nombres,
				"cuit":             h.CUIT,
				"posicion_iva":     h.PosicionIVA,
				"fecha_nacimiento": h.FechaNacimiento,
				"nacionalidad":     h.Nacionalidad,
				"id_direccion":     h.DireccionID,
			}).Error
			if err != nil {
				return apperr.Persistence("actualizar huesped", err)
			}
		}

		return r.replaceSatellites(tx, h)
	})
	if err != nil {
		if creado {
			h.ID = 0
		}
		return false, err
	}
	return creado, nil
}

func (r *HuespedRepository) replaceSatellites(tx *gorm.DB, h *models.Huesped) error {
	if err := tx.Where("id_huesped = ?", h.ID).Delete(&models.TelefonoHuesped{}).Error; err != nil {
		return apperr.Persistence("borrar telefonos", err)
	}
	if err := tx.Where("id_huesped = ?", h.ID).Delete(&models.EmailHuesped{}).Error; err != nil {
		return apperr.Persistence("borrar emails", err)
	}
	if err := tx.Where("id_huesped = ?", h.ID).Delete(&models.OcupacionHuesped{}).Error; err != nil {
		return apperr.Persistence("borrar ocupaciones", err)
	}

	for i := range h.Telefonos {
		h.Telefonos[i].ID = 0
		h.Telefonos[i].HuespedID = h.ID
		if err := tx.Create(&h.Telefonos[i]).Error; err != nil {
			return apperr.Persistence("crear telefono_huesped", err)
		}
	}
	for i := range h.Emails {
		h.Emails[i].ID = 0
		h.Emails[i].HuespedID = h.ID
		if err := tx.Create(&h.Emails[i]).Error; err != nil {
			return apperr.Persistence("crear email_huesped", err)
		}
	}
	for i := range h.Ocupaciones {
		h.Ocupaciones[i].ID = 0
		h.Ocupaciones[i].HuespedID = h.ID
		if err := tx.Create(&h.Ocupaciones[i]).Error; err != nil {
			return apperr.Persistence("crear ocupacion_huesped", err)
		}
	}
	return nil
}

// Delete removes the guest, its satellites and its address.
func (r *HuespedRepository) Delete(ctx context.Context, h *models.Huesped) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sat := range []interface{}{&models.TelefonoHuesped{}, &models.EmailHuesped{}, &models.OcupacionHuesped{}} {
			if err := tx.Where("id_huesped = ?", h.ID).Delete(sat).Error; err != nil {
				return apperr.Persistence("borrar satelites huesped", err)
			}
		}
		if err := tx.Delete(&models.Huesped{}, h.ID).Error; err != nil {
			return apperr.Persistence("borrar huesped", err)
		}
		if h.DireccionID != nil {
			if err := tx.Delete(&models.Direccion{}, *h.DireccionID).Error; err != nil {
				return apperr.Persistence("borrar direccion", err)
			}
		}
		return nil
	})
}
