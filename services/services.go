package services

import (
	"time"

	"github.com/shopspring/decimal"

	"hotel-gestion/config"
	"hotel-gestion/repositories"
	"hotel-gestion/storage"
)

// Opciones are the business parameters shared by every gestor.
type Opciones struct {
	MaxDiasRango int
	PuntoVenta   int
	AlicuotaIVA  decimal.Decimal
	JWTSecret    string
	TokenTTL     time.Duration
	Now          func() time.Time
}

func OpcionesDesde(s config.Settings) Opciones {
	return Opciones{
		MaxDiasRango: s.MaxDiasRango,
		PuntoVenta:   s.PuntoVenta,
		AlicuotaIVA:  s.AlicuotaIVA,
		JWTSecret:    s.JWTSecret,
		TokenTTL:     s.TokenTTL,
	}
}

func (o Opciones) withDefaults() Opciones {
	if o.MaxDiasRango <= 0 {
		o.MaxDiasRango = MaxDiasRangoDefault
	}
	if o.PuntoVenta <= 0 {
		o.PuntoVenta = 1
	}
	if o.AlicuotaIVA.IsZero() {
		o.AlicuotaIVA = decimal.RequireFromString("0.21")
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = 8 * time.Hour
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Services wires every gestor to the shared repositories. Built once at startup.
type Services struct {
	Habitaciones *HabitacionService
	Reservas     *ReservaService
	Estadias     *EstadiaService
	Huespedes    *HuespedService
	Responsables *ResponsableService
	Facturas     *FacturaService
	Pagos        *PagoService
	Usuarios     *UsuarioService
}

func New(repos *repositories.Repositories, sesiones storage.SessionStore, opts Opciones) *Services {
	opts = opts.withDefaults()
	return &Services{
		Habitaciones: NewHabitacionService(repos, opts),
		Reservas:     NewReservaService(repos, opts),
		Estadias:     NewEstadiaService(repos, opts),
		Huespedes:    NewHuespedService(repos),
		Responsables: NewResponsableService(repos),
		Facturas:     NewFacturaService(repos, opts),
		Pagos:        NewPagoService(repos, opts),
		Usuarios:     NewUsuarioService(repos, sesiones, opts),
	}
}
