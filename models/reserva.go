package models

import "time"

// Reserva holds a room for [FechaInicio, FechaFin).
type Reserva struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	HabitacionID uint      `gorm:"column:id_habitacion;not null;index:ix_reserva_habitacion_rango" json:"-"`
	FechaInicio  time.Time `gorm:"column:fecha_inicio;not null;index:ix_reserva_habitacion_rango" json:"fechaInicio"`
	FechaFin     time.Time `gorm:"column:fecha_fin;not null" json:"fechaFin"`
	Estado       string    `gorm:"column:estado;size:16;not null;default:ACTIVA" json:"estado"`
	Nombre       string    `gorm:"column:nombre;size:80;not null" json:"nombre"`
	Apellido     string    `gorm:"column:apellido;size:80;not null;index" json:"apellido"`
	Telefono     string    `gorm:"column:telefono;size:32;not null" json:"telefono"`
	CreatedAt    time.Time `gorm:"column:creada" json:"creada"`

	Habitacion Habitacion `gorm:"foreignKey:HabitacionID" json:"habitacion"`
}

func (Reserva) TableName() string { return "reserva" }
