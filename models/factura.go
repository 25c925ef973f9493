package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Factura struct {
	ID                uint            `gorm:"primaryKey;column:id" json:"id"`
	Numero            *string         `gorm:"column:numero;size:16;uniqueIndex" json:"numero"`
	FechaEmision      time.Time       `gorm:"column:fecha_emision;not null" json:"fechaEmision"`
	ImporteNeto       decimal.Decimal `gorm:"column:importe_neto;type:decimal(12,2);not null" json:"importeNeto"`
	IVA               decimal.Decimal `gorm:"column:iva;type:decimal(12,2);not null" json:"iva"`
	ImporteTotal      decimal.Decimal `gorm:"column:importe_total;type:decimal(12,2);not null" json:"importeTotal"`
	Estado            string          `gorm:"column:estado;size:16;not null;default:PENDIENTE;index" json:"estado"`
	Tipo              string          `gorm:"column:tipo;size:1;not null" json:"tipo"`
	Detalle           datatypes.JSON  `gorm:"column:detalle" json:"detalle"`
	EstadiaID         uint            `gorm:"column:id_estadia;not null;index" json:"estadiaId"`
	ResponsablePagoID uint            `gorm:"column:id_responsable_pago;not null;index" json:"responsablePagoId"`
	NotaCreditoID     *uint           `gorm:"column:id_nota_credito" json:"notaCreditoId,omitempty"`

	ResponsablePago ResponsablePago `gorm:"foreignKey:ResponsablePagoID" json:"responsablePago"`
	Estadia         Estadia         `gorm:"foreignKey:EstadiaID" json:"-"`
}

func (Factura) TableName() string { return "factura" }

// ItemFactura is one line of factura.detalle.
type ItemFactura struct {
	Descripcion    string          `json:"descripcion"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type NotaCredito struct {
	ID                uint            `gorm:"primaryKey;column:id" json:"id"`
	Numero            *string         `gorm:"column:numero;size:16;uniqueIndex" json:"numero"`
	Fecha             time.Time       `gorm:"column:fecha;not null" json:"fecha"`
	ImporteNeto       decimal.Decimal `gorm:"column:importe_neto;type:decimal(12,2);not null" json:"importeNeto"`
	IVA               decimal.Decimal `gorm:"column:iva;type:decimal(12,2);not null" json:"iva"`
	ImporteDevolucion decimal.Decimal `gorm:"column:importe_devolucion;type:decimal(12,2);not null" json:"importeDevolucion"`

	Facturas []Factura `gorm:"foreignKey:NotaCreditoID" json:"facturas"`
}

func (NotaCredito) TableName() string { return "nota_credito" }
