package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Pago struct {
	ID         uint            `gorm:"primaryKey;column:id" json:"id"`
	FacturaID  uint            `gorm:"column:id_factura;not null;index" json:"facturaId"`
	Importe    decimal.Decimal `gorm:"column:importe;type:decimal(12,2);not null" json:"importe"`
	Moneda     string          `gorm:"column:moneda;size:16;not null" json:"moneda"`
	Cotizacion decimal.Decimal `gorm:"column:cotizacion;type:decimal(12,4);not null" json:"cotizacion"`
	Vuelto     decimal.Decimal `gorm:"column:vuelto;type:decimal(12,2);not null;default:0" json:"vuelto"`
	Fecha      time.Time       `gorm:"column:fecha;not null" json:"fecha"`

	Medios []MedioPago `gorm:"-" json:"medios"`
}

func (Pago) TableName() string { return "pago" }

// MedioPago points at exactly one instrument row; the others stay NULL.
// Subtype rows are written and loaded by the payment repository, not by gorm associations.
type MedioPago struct {
	ID            uint            `gorm:"primaryKey;column:id" json:"id"`
	PagoID        uint            `gorm:"column:id_pago;not null;index" json:"-"`
	Tipo          string          `gorm:"column:tipo;size:16;not null" json:"tipo"`
	Importe       decimal.Decimal `gorm:"column:importe;type:decimal(12,2);not null" json:"importe"`
	Cuotas        int             `gorm:"column:cuotas;not null;default:0" json:"cuotas,omitempty"`
	EfectivoID    *uint           `gorm:"column:id_efectivo" json:"efectivoId,omitempty"`
	NumeroCheque  *string         `gorm:"column:numero_cheque;size:32" json:"numeroCheque,omitempty"`
	NumeroTarjeta *string         `gorm:"column:numero_tarjeta;size:32" json:"numeroTarjeta,omitempty"`

	Efectivo       *Efectivo       `gorm:"-" json:"efectivo,omitempty"`
	Cheque         *Cheque         `gorm:"-" json:"cheque,omitempty"`
	TarjetaDebito  *TarjetaDebito  `gorm:"-" json:"tarjetaDebito,omitempty"`
	TarjetaCredito *TarjetaCredito `gorm:"-" json:"tarjetaCredito,omitempty"`
}

func (MedioPago) TableName() string { return "medio_pago" }

var ErrMedioPagoAmbiguo = errors.New("medio de pago: debe indicar exactamente un instrumento")

// CheckSubtipo enforces that exactly one instrument is attached and matches Tipo.
func (m MedioPago) CheckSubtipo() error {
	n := 0
	tipo := ""
	if m.Efectivo != nil {
		n++
		tipo = MedioEfectivo
	}
	if m.Cheque != nil {
		n++
		tipo = MedioCheque
	}
	if m.TarjetaDebito != nil {
		n++
		tipo = MedioTarjetaDebito
	}
	if m.TarjetaCredito != nil {
		n++
		tipo = MedioTarjetaCredito
	}
	if n != 1 || (m.Tipo != "" && m.Tipo != tipo) {
		return ErrMedioPagoAmbiguo
	}
	return nil
}

type Efectivo struct {
	ID      uint            `gorm:"primaryKey;column:id" json:"id"`
	Importe decimal.Decimal `gorm:"column:importe;type:decimal(12,2);not null" json:"importe"`
	Moneda  string          `gorm:"column:moneda;size:16;not null" json:"moneda"`
}

func (Efectivo) TableName() string { return "efectivo" }

type Cheque struct {
	NumeroCheque string    `gorm:"primaryKey;column:numero_cheque;size:32" json:"numeroCheque"`
	Banco        string    `gorm:"column:banco;size:80;not null" json:"banco"`
	Plaza        string    `gorm:"column:plaza;size:80;not null" json:"plaza"`
	FechaCobro   time.Time `gorm:"column:fecha_cobro;not null" json:"fechaCobro"`
}

func (Cheque) TableName() string { return "cheque" }

type TarjetaDebito struct {
	NumeroTarjeta string `gorm:"primaryKey;column:numero_tarjeta;size:32" json:"numeroTarjeta"`
	Banco         string `gorm:"column:banco;size:80;not null" json:"banco"`
	Titular       string `gorm:"column:titular;size:120;not null" json:"titular"`
	Vencimiento   string `gorm:"column:vencimiento;size:7;not null" json:"vencimiento"`
}

func (TarjetaDebito) TableName() string { return "tarjeta_debito" }

type TarjetaCredito struct {
	NumeroTarjeta string `gorm:"primaryKey;column:numero_tarjeta;size:32" json:"numeroTarjeta"`
	Banco         string `gorm:"column:banco;size:80;not null" json:"banco"`
	Titular       string `gorm:"column:titular;size:120;not null" json:"titular"`
	Vencimiento   string `gorm:"column:vencimiento;size:7;not null" json:"vencimiento"`
}

func (TarjetaCredito) TableName() string { return "tarjeta_credito" }
