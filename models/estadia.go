package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estadia is the occupancy of a room for [FechaCheckIn, FechaCheckOut).
type Estadia struct {
	ID            uint            `gorm:"primaryKey;column:id" json:"id"`
	HabitacionID  uint            `gorm:"column:id_habitacion;not null;index:ix_estadia_habitacion_rango" json:"-"`
	ReservaID     *uint           `gorm:"column:id_reserva" json:"reservaId,omitempty"`
	FechaCheckIn  time.Time       `gorm:"column:fecha_check_in;not null;index:ix_estadia_habitacion_rango" json:"fechaCheckIn"`
	FechaCheckOut time.Time       `gorm:"column:fecha_check_out;not null" json:"fechaCheckOut"`
	Valor         decimal.Decimal `gorm:"column:valor;type:decimal(12,2);not null" json:"valor"`
	Estado        string          `gorm:"column:estado;size:16;not null;default:ACTIVA" json:"estado"`

	Habitacion Habitacion       `gorm:"foreignKey:HabitacionID" json:"habitacion"`
	Huespedes  []EstadiaHuesped `gorm:"foreignKey:EstadiaID" json:"huespedes"`
}

func (Estadia) TableName() string { return "estadia" }

// Responsable returns the guest flagged as responsible, if loaded.
func (e Estadia) Responsable() *Huesped {
	for i := range e.Huespedes {
		if e.Huespedes[i].EsResponsable {
			return &e.Huespedes[i].Huesped
		}
	}
	return nil
}

type EstadiaHuesped struct {
	EstadiaID     uint `gorm:"primaryKey;column:id_estadia" json:"-"`
	HuespedID     uint `gorm:"primaryKey;column:id_huesped;index" json:"-"`
	EsResponsable bool `gorm:"column:es_responsable;not null;default:false" json:"esResponsable"`

	Huesped Huesped `gorm:"foreignKey:HuespedID" json:"huesped"`
}

func (EstadiaHuesped) TableName() string { return "estadia_huesped" }
