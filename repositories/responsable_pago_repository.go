package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type ResponsablePagoRepository struct {
	DB *gorm.DB
}

func NewResponsablePagoRepository(db *gorm.DB) *ResponsablePagoRepository {
	return &ResponsablePagoRepository{DB: db}
}

func (r *ResponsablePagoRepository) preload(db *gorm.DB) *gorm.DB {
	return db.Preload("PersonaFisica.Huesped").Preload("PersonaJuridica.Direccion")
}

// CreateJuridica writes responsable_pago, the company's address and persona_juridica
// in one transaction.
func (r *ResponsablePagoRepository) CreateJuridica(ctx context.Context, pj *models.PersonaJuridica) (*models.ResponsablePago, error) {
	rp := &models.ResponsablePago{Tipo: models.ResponsableJuridica}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("PersonaFisica", "PersonaJuridica").Create(rp).Error; err != nil {
			return apperr.Persistence("crear responsable_pago", err)
		}
		if pj.Direccion != nil {
			pj.Direccion.ID = 0
			if err := tx.Create(pj.Direccion).Error; err != nil {
				return apperr.Persistence("crear direccion", err)
			}
			pj.DireccionID = &pj.Direccion.ID
		}
		pj.ResponsablePagoID = rp.ID
		if err := tx.Omit("Direccion").Create(pj).Error; err != nil {
			return apperr.Persistence("crear persona_juridica", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rp.PersonaJuridica = pj
	return rp, nil
}

// FindOrCreateFisica returns the natural-person responsable for a guest, creating the
// responsable_pago + persona_fisica pair the first time the guest pays.
func (r *ResponsablePagoRepository) FindOrCreateFisica(ctx context.Context, huesped *models.Huesped) (*models.ResponsablePago, error) {
	var id uint
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pf models.PersonaFisica
		err := tx.Where("id_huesped = ?", huesped.ID).First(&pf).Error
		if err == nil {
			id = pf.ResponsablePagoID
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Persistence("buscar persona_fisica", err)
		}

		rp := models.ResponsablePago{Tipo: models.ResponsableFisica}
		if err := tx.Omit("PersonaFisica", "PersonaJuridica").Create(&rp).Error; err != nil {
			return apperr.Persistence("crear responsable_pago", err)
		}
		pf = models.PersonaFisica{ResponsablePagoID: rp.ID, HuespedID: huesped.ID}
		if err := tx.Omit("Huesped").Create(&pf).Error; err != nil {
			return apperr.Persistence("crear persona_fisica", err)
		}
		id = rp.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ResponsablePagoRepository) FindByID(ctx context.Context, id uint) (*models.ResponsablePago, error) {
	var rp models.ResponsablePago
	err := r.preload(r.DB.WithContext(ctx)).First(&rp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("responsable de pago %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar responsable_pago", err)
	}
	return &rp, nil
}

func (r *ResponsablePagoRepository) FindByCUIT(ctx context.Context, cuit string) (*models.ResponsablePago, error) {
	var pj models.PersonaJuridica
	err := r.DB.WithContext(ctx).Where("cuit = ?", cuit).First(&pj).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("responsable de pago con CUIT %s", cuit)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar persona_juridica", err)
	}
	return r.FindByID(ctx, pj.ResponsablePagoID)
}

// SearchJuridicas lists companies whose name starts with razonSocial (all when blank).
func (r *ResponsablePagoRepository) SearchJuridicas(ctx context.Context, razonSocial string) ([]models.ResponsablePago, error) {
	q := r.preload(r.DB.WithContext(ctx)).
		Joins("JOIN persona_juridica pj ON pj.id_responsable_pago = responsable_pago.id")
	if razonSocial != "" {
		q = q.Where("LOWER(pj.razon_social) LIKE LOWER(?)", razonSocial+"%")
	}
	var list []models.ResponsablePago
	if err := q.Order("pj.razon_social ASC").Find(&list).Error; err != nil {
		return nil, apperr.Persistence("buscar responsables", err)
	}
	return list, nil
}
