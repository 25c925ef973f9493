package models

import "time"

// Huesped is identified by (tipo_documento, numero_documento); the id is internal.
type Huesped struct {
	ID              uint       `gorm:"primaryKey;column:id" json:"id"`
	TipoDocumento   string     `gorm:"column:tipo_documento;size:16;not null;uniqueIndex:ux_huesped_documento" json:"tipoDocumento"`
	NumeroDocumento string     `gorm:"column:numero_documento;size:32;not null;uniqueIndex:ux_huesped_documento" json:"numeroDocumento"`
	Apellido        string     `gorm:"column:apellido;size:80;not null;index" json:"apellido"`
	Nombres         string     `gorm:"column:nombres;size:80;not null" json:"nombres"`
	CUIT            string     `gorm:"column:cuit;size:16" json:"cuit,omitempty"`
	PosicionIVA     string     `gorm:"column:posicion_iva;size:32;not null;default:CONSUMIDOR_FINAL" json:"posicionIva"`
	FechaNacimiento *time.Time `gorm:"column:fecha_nacimiento" json:"fechaNacimiento,omitempty"`
	Nacionalidad    string     `gorm:"column:nacionalidad;size:60" json:"nacionalidad"`
	DireccionID     *uint      `gorm:"column:id_direccion" json:"-"`

	Direccion   *Direccion         `gorm:"foreignKey:DireccionID" json:"direccion,omitempty"`
	Telefonos   []TelefonoHuesped  `gorm:"foreignKey:HuespedID" json:"telefonos"`
	Emails      []EmailHuesped     `gorm:"foreignKey:HuespedID" json:"emails"`
	Ocupaciones []OcupacionHuesped `gorm:"foreignKey:HuespedID" json:"ocupaciones"`
}

func (Huesped) TableName() string { return "huesped" }

func (h Huesped) NombreCompleto() string {
	return h.Apellido + ", " + h.Nombres
}

type TelefonoHuesped struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"-"`
	HuespedID uint   `gorm:"column:id_huesped;index;not null" json:"-"`
	Telefono  string `gorm:"column:telefono;size:32;not null" json:"telefono"`
}

func (TelefonoHuesped) TableName() string { return "telefono_huesped" }

// EmailHuesped carries a CHECK on its shape so a malformed address fails the insert.
type EmailHuesped struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"-"`
	HuespedID uint   `gorm:"column:id_huesped;index;not null" json:"-"`
	Email     string `gorm:"column:email;size:150;not null;check:chk_email_huesped_formato,email LIKE '%_@_%._%'" json:"email"`
}

func (EmailHuesped) TableName() string { return "email_huesped" }

type OcupacionHuesped struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"-"`
	HuespedID uint   `gorm:"column:id_huesped;index;not null" json:"-"`
	Ocupacion string `gorm:"column:ocupacion;size:80;not null" json:"ocupacion"`
}

func (OcupacionHuesped) TableName() string { return "ocupacion_huesped" }
