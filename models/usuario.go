package models

import "time"

type Usuario struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Nombre      string    `gorm:"column:nombre;size:80;uniqueIndex;not null" json:"nombre"`
	Contrasenia string    `gorm:"column:contrasenia;size:255;not null" json:"-"` // bcrypt hash
	CreatedAt   time.Time `gorm:"column:creado" json:"creado"`
}

func (Usuario) TableName() string { return "usuario" }
