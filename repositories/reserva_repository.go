package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type ReservaRepository struct {
	DB *gorm.DB
}

func NewReservaRepository(db *gorm.DB) *ReservaRepository {
	return &ReservaRepository{DB: db}
}

func (r *ReservaRepository) Create(ctx context.Context, res *models.Reserva) error {
	return apperr.Persistence("crear reserva", r.DB.WithContext(ctx).Omit("Habitacion").Create(res).Error)
}

func (r *ReservaRepository) FindByID(ctx context.Context, id uint) (*models.Reserva, error) {
	var res models.Reserva
	err := r.DB.WithContext(ctx).Preload("Habitacion").First(&res, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("reserva %d", id)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar reserva", err)
	}
	return &res, nil
}

// Search returns active reservations whose contact starts with the given surname / name.
func (r *ReservaRepository) Search(ctx context.Context, apellido, nombre string) ([]models.Reserva, error) {
	q := r.DB.WithContext(ctx).Preload("Habitacion").Where("estado = ?", models.ReservaActiva)
	if a := strings.ToLower(strings.TrimSpace(apellido)); a != "" {
		q = q.Where("LOWER(apellido) LIKE ?", a+"%")
	}
	if n := strings.ToLower(strings.TrimSpace(nombre)); n != "" {
		q = q.Where("LOWER(nombre) LIKE ?", n+"%")
	}
	var list []models.Reserva
	if err := q.Order("fecha_inicio ASC, id ASC").Find(&list).Error; err != nil {
		return nil, apperr.Persistence("buscar reservas", err)
	}
	return list, nil
}

func (r *ReservaRepository) UpdateEstado(ctx context.Context, id uint, estado string) error {
	res := r.DB.WithContext(ctx).Model(&models.Reserva{}).Where("id = ?", id).Update("estado", estado)
	if res.Error != nil {
		return apperr.Persistence("actualizar estado reserva", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("reserva %d", id)
	}
	return nil
}

// ExisteSolapamiento reports whether an active reservation of the room intersects
// [desde, hasta). Touching ranges (fin == desde) do not overlap. excluir skips one
// reservation, the one being taken by a check-in.
func (r *ReservaRepository) ExisteSolapamiento(ctx context.Context, habitacionID uint, desde, hasta time.Time, excluir *uint) (bool, error) {
	q := r.DB.WithContext(ctx).Model(&models.Reserva{}).
		Where("id_habitacion = ? AND estado = ?", habitacionID, models.ReservaActiva).
		Where("fecha_inicio < ? AND fecha_fin > ?", hasta, desde)
	if excluir != nil {
		q = q.Where("id <> ?", *excluir)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperr.Persistence("verificar solapamiento reserva", err)
	}
	return count > 0, nil
}

// EnRango lists active reservations intersecting [desde, hasta).
func (r *ReservaRepository) EnRango(ctx context.Context, desde, hasta time.Time) ([]models.Reserva, error) {
	var list []models.Reserva
	err := r.DB.WithContext(ctx).
		Where("estado = ? AND fecha_inicio < ? AND fecha_fin > ?", models.ReservaActiva, hasta, desde).
		Find(&list).Error
	if err != nil {
		return nil, apperr.Persistence("listar reservas en rango", err)
	}
	return list, nil
}
