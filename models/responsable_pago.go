package models

// ResponsablePago is the billing party; exactly one of the specializations exists.
type ResponsablePago struct {
	ID   uint   `gorm:"primaryKey;column:id" json:"id"`
	Tipo string `gorm:"column:tipo;size:16;not null" json:"tipo"`

	PersonaFisica   *PersonaFisica   `gorm:"foreignKey:ResponsablePagoID" json:"personaFisica,omitempty"`
	PersonaJuridica *PersonaJuridica `gorm:"foreignKey:ResponsablePagoID" json:"personaJuridica,omitempty"`
}

func (ResponsablePago) TableName() string { return "responsable_pago" }

// RazonSocial is the name printed on invoices.
func (r ResponsablePago) RazonSocial() string {
	switch {
	case r.PersonaJuridica != nil:
		return r.PersonaJuridica.RazonSocial
	case r.PersonaFisica != nil && r.PersonaFisica.Huesped.ID != 0:
		return r.PersonaFisica.Huesped.NombreCompleto()
	}
	return ""
}

// PosicionIVA of a company is always responsable inscripto; a person's comes from the guest.
func (r ResponsablePago) PosicionIVA() string {
	if r.PersonaJuridica != nil {
		return IVAResponsableInscripto
	}
	if r.PersonaFisica != nil && r.PersonaFisica.Huesped.PosicionIVA != "" {
		return r.PersonaFisica.Huesped.PosicionIVA
	}
	return IVAConsumidorFinal
}

func (r ResponsablePago) CUIT() string {
	if r.PersonaJuridica != nil {
		return r.PersonaJuridica.CUIT
	}
	if r.PersonaFisica != nil {
		return r.PersonaFisica.Huesped.CUIT
	}
	return ""
}

type PersonaFisica struct {
	ResponsablePagoID uint `gorm:"primaryKey;column:id_responsable_pago" json:"-"`
	HuespedID         uint `gorm:"column:id_huesped;uniqueIndex;not null" json:"-"`

	Huesped Huesped `gorm:"foreignKey:HuespedID" json:"huesped"`
}

func (PersonaFisica) TableName() string { return "persona_fisica" }

type PersonaJuridica struct {
	ResponsablePagoID uint   `gorm:"primaryKey;column:id_responsable_pago" json:"-"`
	RazonSocial       string `gorm:"column:razon_social;size:120;not null" json:"razonSocial"`
	CUIT              string `gorm:"column:cuit;size:16;uniqueIndex;not null" json:"cuit"`
	Telefono          string `gorm:"column:telefono;size:32" json:"telefono"`
	DireccionID       *uint  `gorm:"column:id_direccion" json:"-"`

	Direccion *Direccion `gorm:"foreignKey:DireccionID" json:"direccion,omitempty"`
}

func (PersonaJuridica) TableName() string { return "persona_juridica" }
