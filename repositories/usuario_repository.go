package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type UsuarioRepository struct {
	DB *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{DB: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, u *models.Usuario) error {
	return apperr.Persistence("crear usuario", r.DB.WithContext(ctx).Create(u).Error)
}

func (r *UsuarioRepository) FindByNombre(ctx context.Context, nombre string) (*models.Usuario, error) {
	var u models.Usuario
	err := r.DB.WithContext(ctx).Where("nombre = ?", nombre).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("usuario %s", nombre)
	}
	if err != nil {
		return nil, apperr.Persistence("buscar usuario", err)
	}
	return &u, nil
}

func (r *UsuarioRepository) UpdateContrasenia(ctx context.Context, id uint, hash string) error {
	return apperr.Persistence("actualizar contrasenia",
		r.DB.WithContext(ctx).Model(&models.Usuario{}).Where("id = ?", id).Update("contrasenia", hash).Error)
}
