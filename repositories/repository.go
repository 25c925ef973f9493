// Package repositories holds one stateless repository per table group. Every
// repository wraps a *gorm.DB that is either the pool or an open transaction
// (see WithTx), so services can compose several writes in one db.Transaction.
package repositories

import (
	"fmt"

	"gorm.io/gorm"
)

// Repositories is built once at startup and shared by every request.
type Repositories struct {
	DB           *gorm.DB
	Habitaciones *HabitacionRepository
	Reservas     *ReservaRepository
	Estadias     *EstadiaRepository
	Huespedes    *HuespedRepository
	Responsables *ResponsablePagoRepository
	Facturas     *FacturaRepository
	NotasCredito *NotaCreditoRepository
	Pagos        *PagoRepository
	Usuarios     *UsuarioRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:           db,
		Habitaciones: NewHabitacionRepository(db),
		Reservas:     NewReservaRepository(db),
		Estadias:     NewEstadiaRepository(db),
		Huespedes:    NewHuespedRepository(db),
		Responsables: NewResponsablePagoRepository(db),
		Facturas:     NewFacturaRepository(db),
		NotasCredito: NewNotaCreditoRepository(db),
		Pagos:        NewPagoRepository(db),
		Usuarios:     NewUsuarioRepository(db),
	}
}

// WithTx rebinds every repository to tx.
func (r *Repositories) WithTx(tx *gorm.DB) *Repositories {
	return New(tx)
}

// numeroComprobante formats invoice / credit-note numbers as PPPP-NNNNNNNN.
func numeroComprobante(puntoVenta int, id uint) string {
	return fmt.Sprintf("%04d-%08d", puntoVenta, id)
}
