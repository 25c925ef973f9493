package models

import "github.com/shopspring/decimal"

type Habitacion struct {
	ID         uint            `gorm:"primaryKey;column:id" json:"id"`
	Numero     int             `gorm:"column:numero;uniqueIndex;not null" json:"numero"`
	Tipo       string          `gorm:"column:tipo;size:32;not null" json:"tipo"`
	Capacidad  int             `gorm:"column:capacidad;not null" json:"capacidad"`
	Estado     string          `gorm:"column:estado;size:32;not null;default:DISPONIBLE" json:"estado"`
	CostoNoche decimal.Decimal `gorm:"column:costo_noche;type:decimal(12,2);not null" json:"costoNoche"`
}

func (Habitacion) TableName() string { return "habitacion" }
