package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type NotaCreditoRepository struct {
	DB *gorm.DB
}

func NewNotaCreditoRepository(db *gorm.DB) *NotaCreditoRepository {
	return &NotaCreditoRepository{DB: db}
}

func (r *NotaCreditoRepository) Create(ctx context.Context, nc *models.NotaCredito, puntoVenta int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Facturas").Create(nc).Error; err != nil {
			return apperr.Persistence("crear nota_credito", err)
		}
		numero := numeroComprobante(puntoVenta, nc.ID)
		if err := tx.Model(&models.NotaCredito{}).Where("id = ?", nc.ID).Update("numero", numero).Error; err != nil {
			return apperr.Persistence("numerar nota_credito", err)
		}
		nc.Numero = &numero
		return nil
	})
}

func (r *NotaCreditoRepository) FindByID(ctx context.Context, id uint) (*models.NotaCredito, error) {
	var nc models.NotaCredito
	err := r.DB.WithContext(ctx).Preload("Facturas").First(&nc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("nota de crédito %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar nota_credito", err)
	}
	return &nc, nil
}
