package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type EstadiaRepository struct {
	DB *gorm.DB
}

func NewEstadiaRepository(db *gorm.DB) *EstadiaRepository {
	return &EstadiaRepository{DB: db}
}

// Create inserts the stay and one estadia_huesped row per guest; all or nothing.
func (r *EstadiaRepository) Create(ctx context.Context, e *models.Estadia, huespedes []models.EstadiaHuesped) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Habitacion", "Huespedes").Create(e).Error; err != nil {
			return apperr.Persistence("crear estadia", err)
		}
		for i := range huespedes {
			huespedes[i].EstadiaID = e.ID
			if err := tx.Omit("Huesped").Create(&huespedes[i]).Error; err != nil {
				return apperr.Persistence("crear estadia_huesped", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.Huespedes = huespedes
	return nil
}

func (r *EstadiaRepository) FindByID(ctx context.Context, id uint) (*models.Estadia, error) {
	var e models.Estadia
	err := r.DB.WithContext(ctx).
		Preload("Habitacion").
		Preload("Huespedes", func(db *gorm.DB) *gorm.DB {
			return db.Order("es_responsable DESC, id_huesped ASC")
		}).
		Preload("Huespedes.Huesped").
		First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("estadía %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar estadia", err)
	}
	return &e, nil
}

// ActivaPorHabitacion returns the running stay of a room.
func (r *EstadiaRepository) ActivaPorHabitacion(ctx context.Context, habitacionID uint) (*models.Estadia, error) {
	var e models.Estadia
	err := r.DB.WithContext(ctx).
		Where("id_habitacion = ? AND estado = ?", habitacionID, models.EstadiaActiva).
		Order("fecha_check_in DESC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("estadía activa para la habitación id %d", habitacionID)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar estadia activa", err)
	}
	return r.FindByID(ctx, e.ID)
}

// ExisteSolapamiento reports whether an active stay of the room intersects [desde, hasta).
func (r *EstadiaRepository) ExisteSolapamiento(ctx context.Context, habitacionID uint, desde, hasta time.Time) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Estadia{}).
		Where("id_habitacion = ? AND estado = ?", habitacionID, models.EstadiaActiva).
		Where("fecha_check_in < ? AND fecha_check_out > ?", hasta, desde).
		Count(&count).Error
	if err != nil {
		return false, apperr.Persistence("verificar solapamiento estadia", err)
	}
	return count > 0, nil
}

// HuespedOcupado reports whether the guest with that document is in an active stay
// intersecting [desde, hasta).
func (r *EstadiaRepository) HuespedOcupado(ctx context.Context, tipoDocumento, numeroDocumento string, desde, hasta time.Time) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("estadia_huesped AS eh").
		Joins("JOIN estadia e ON e.id = eh.id_estadia").
		Joins("JOIN huesped h ON h.id = eh.id_huesped").
		Where("h.tipo_documento = ? AND h.numero_documento = ?", tipoDocumento, numeroDocumento).
		Where("e.estado = ? AND e.fecha_check_in < ? AND e.fecha_check_out > ?", models.EstadiaActiva, hasta, desde).
		Count(&count).Error
	if err != nil {
		return false, apperr.Persistence("verificar huesped ocupado", err)
	}
	return count > 0, nil
}

// Finalizar closes the stay with its real departure day and final value.
func (r *EstadiaRepository) Finalizar(ctx context.Context, e *models.Estadia) error {
	res := r.DB.WithContext(ctx).Model(&models.Estadia{}).
		Where("id = ? AND estado = ?", e.ID, models.EstadiaActiva).
		Updates(map[string]interface{}{
			"estado":          models.EstadiaFinalizada,
			"fecha_check_out": e.FechaCheckOut,
			"valor":           e.Valor,
		})
	if res.Error != nil {
		return apperr.Persistence("finalizar estadia", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Conflict("la estadía %d ya no está activa", e.ID)
	}
	e.Estado = models.EstadiaFinalizada
	return nil
}

func (r *EstadiaRepository) EnRango(ctx context.Context, desde, hasta time.Time) ([]models.Estadia, error) {
	var list []models.Estadia
	err := r.DB.WithContext(ctx).
		Where("estado = ? AND fecha_check_in < ? AND fecha_check_out > ?", models.EstadiaActiva, hasta, desde).
		Find(&list).Error
	if err != nil {
		return nil, apperr.Persistence("listar estadias en rango", err)
	}
	return list, nil
}

func (r *EstadiaRepository) CountByHuesped(ctx context.Context, huespedID uint) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.EstadiaHuesped{}).Where("id_huesped = ?", huespedID).Count(&count).Error; err != nil {
		return 0, apperr.Persistence("contar estadias de huesped", err)
	}
	return count, nil
}
