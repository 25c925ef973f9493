package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type FacturaRepository struct {
	DB *gorm.DB
}

func NewFacturaRepository(db *gorm.DB) *FacturaRepository {
	return &FacturaRepository{DB: db}
}

// Create inserts the invoice and stamps its number from the generated id.
func (r *FacturaRepository) Create(ctx context.Context, f *models.Factura, puntoVenta int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("ResponsablePago", "Estadia").Create(f).Error; err != nil {
			return apperr.Persistence("crear factura", err)
		}
		numero := numeroComprobante(puntoVenta, f.ID)
		if err := tx.Model(&models.Factura{}).Where("id = ?", f.ID).Update("numero", numero).Error; err != nil {
			return apperr.Persistence("numerar factura", err)
		}
		f.Numero = &numero
		return nil
	})
}

func (r *FacturaRepository) FindByID(ctx context.Context, id uint) (*models.Factura, error) {
	var f models.Factura
	err := r.DB.WithContext(ctx).
		Preload("ResponsablePago.PersonaFisica.Huesped").
		Preload("ResponsablePago.PersonaJuridica.Direccion").
		Preload("Estadia.Habitacion").
		First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("factura %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar factura", err)
	}
	return &f, nil
}

func (r *FacturaRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Factura, error) {
	var list []models.Factura
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&list).Error; err != nil {
		return nil, apperr.Persistence("buscar facturas", err)
	}
	return list, nil
}

func (r *FacturaRepository) Pendientes(ctx context.Context, responsableID uint) ([]models.Factura, error) {
	var list []models.Factura
	err := r.DB.WithContext(ctx).
		Where("id_responsable_pago = ? AND estado = ?", responsableID, models.FacturaPendiente).
		Order("fecha_emision ASC, id ASC").
		Find(&list).Error
	if err != nil {
		return nil, apperr.Persistence("listar facturas pendientes", err)
	}
	return list, nil
}

func (r *FacturaRepository) UpdateEstado(ctx context.Context, id uint, estado string) error {
	res := r.DB.WithContext(ctx).Model(&models.Factura{}).Where("id = ?", id).Update("estado", estado)
	if res.Error != nil {
		return apperr.Persistence("actualizar estado factura", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("factura %d", id)
	}
	return nil
}

// Anular links pending invoices to a credit note and marks them ANULADA.
func (r *FacturaRepository) Anular(ctx context.Context, ids []uint, notaCreditoID uint) error {
	res := r.DB.WithContext(ctx).Model(&models.Factura{}).
		Where("id IN ? AND estado = ?", ids, models.FacturaPendiente).
		Updates(map[string]interface{}{"estado": models.FacturaAnulada, "id_nota_credito": notaCreditoID})
	if res.Error != nil {
		return apperr.Persistence("anular facturas", res.Error)
	}
	if res.RowsAffected != int64(len(ids)) {
		return apperr.Conflict("solo se pueden anular facturas pendientes")
	}
	return nil
}
