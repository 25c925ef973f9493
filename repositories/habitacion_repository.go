package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type HabitacionRepository struct {
	DB *gorm.DB
}

func NewHabitacionRepository(db *gorm.DB) *HabitacionRepository {
	return &HabitacionRepository{DB: db}
}

func (r *HabitacionRepository) Create(ctx context.Context, h *models.Habitacion) error {
	return apperr.Persistence("crear habitacion", r.DB.WithContext(ctx).Create(h).Error)
}

func (r *HabitacionRepository) FindAll(ctx context.Context) ([]models.Habitacion, error) {
	var list []models.Habitacion
	if err := r.DB.WithContext(ctx).Order("numero ASC").Find(&list).Error; err != nil {
		return nil, apperr.Persistence("listar habitaciones", err)
	}
	return list, nil
}

func (r *HabitacionRepository) FindByNumero(ctx context.Context, numero int) (*models.Habitacion, error) {
	var h models.Habitacion
	err := r.DB.WithContext(ctx).Where("numero = ?", numero).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("habitación %d", numero)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar habitacion", err)
	}
	return &h, nil
}

func (r *HabitacionRepository) FindByID(ctx context.Context, id uint) (*models.Habitacion, error) {
	var h models.Habitacion
	err := r.DB.WithContext(ctx).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("habitación id %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar habitacion", err)
	}
	return &h, nil
}

func (r *HabitacionRepository) UpdateEstado(ctx context.Context, id uint, estado string) error {
	res := r.DB.WithContext(ctx).Model(&models.Habitacion{}).Where("id = ?", id).Update("estado", estado)
	if res.Error != nil {
		return apperr.Persistence("actualizar estado habitacion", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("habitación id %d", id)
	}
	return nil
}
