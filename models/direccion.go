package models

type Direccion struct {
	ID           uint   `gorm:"primaryKey;column:id" json:"id"`
	Calle        string `gorm:"column:calle;size:120;not null" json:"calle"`
	Numero       string `gorm:"column:numero;size:16;not null" json:"numero"`
	Departamento string `gorm:"column:departamento;size:16" json:"departamento,omitempty"`
	Piso         string `gorm:"column:piso;size:8" json:"piso,omitempty"`
	CodigoPostal string `gorm:"column:codigo_postal;size:16" json:"codigoPostal"`
	Localidad    string `gorm:"column:localidad;size:80" json:"localidad"`
	Provincia    string `gorm:"column:provincia;size:80" json:"provincia"`
	Pais         string `gorm:"column:pais;size:80" json:"pais"`
}

func (Direccion) TableName() string { return "direccion" }
