// Package dto holds the JSON payloads exchanged with the front desk client.
// Enum fields accept any case or accent ("Pasaporte", "fuera de servicio").
package dto

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Contrasenia string `json:"contrasenia" binding:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Usuario string `json:"usuario"`
	Expira  int64  `json:"expira"`
}

type RegistrarUsuarioRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=80"`
	Contrasenia string `json:"contrasenia" binding:"required,min=6"`
}

type CambioContraseniaRequest struct {
	Actual string `json:"actual" binding:"required"`
	Nueva  string `json:"nueva" binding:"required,min=6"`
}

type HabitacionRequest struct {
	Numero     int             `json:"numero" binding:"required,gt=0"`
	Tipo       string          `json:"tipo" binding:"required,enum=tipo_habitacion"`
	Capacidad  int             `json:"capacidad" binding:"required,gt=0"`
	Estado     string          `json:"estado" binding:"omitempty,enum=estado_habitacion"`
	CostoNoche decimal.Decimal `json:"costoNoche"`
}

type CambioEstadoRequest struct {
	Estado string `json:"estado" binding:"required,enum=estado_habitacion"`
}

type DisponibilidadResponse struct {
	Numero     int    `json:"numero"`
	Desde      string `json:"desde"`
	Hasta      string `json:"hasta"`
	Disponible bool   `json:"disponible"`
}

// GrillaHabitacion is one row of the availability grid: one state per day.
type GrillaHabitacion struct {
	Numero int               `json:"numero"`
	Tipo   string            `json:"tipo"`
	Dias   map[string]string `json:"dias"`
}

type RangoHabitacion struct {
	Numero int    `json:"numero" binding:"required,gt=0"`
	Desde  string `json:"desde" binding:"required"`
	Hasta  string `json:"hasta" binding:"required"`
}

type NuevaReservaRequest struct {
	Nombre       string            `json:"nombre"`
	Apellido     string            `json:"apellido"`
	Telefono     string            `json:"telefono"`
	Habitaciones []RangoHabitacion `json:"habitaciones" binding:"required,min=1,dive"`
}

type CancelarReservasRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// DocumentoRef points at a guest by natural key.
type DocumentoRef struct {
	TipoDocumento   string `json:"tipoDocumento" binding:"required,enum=tipo_documento"`
	NumeroDocumento string `json:"numeroDocumento" binding:"required"`
}

type NuevaEstadiaRequest struct {
	Numero        int            `json:"numero" binding:"required,gt=0"`
	Desde         string         `json:"desde" binding:"required"`
	Hasta         string         `json:"hasta" binding:"required"`
	Responsable   DocumentoRef   `json:"responsable"`
	Acompaniantes []DocumentoRef `json:"acompaniantes" binding:"dive"`
	ReservaID     *uint          `json:"reservaId"`
	OcuparIgual   bool           `json:"ocuparIgual"`
}

type DireccionDTO struct {
	Calle        string `json:"calle"`
	Numero       string `json:"numero"`
	Departamento string `json:"departamento"`
	Piso         string `json:"piso"`
	CodigoPostal string `json:"codigoPostal"`
	Localidad    string `json:"localidad"`
	Provincia    string `json:"provincia"`
	Pais         string `json:"pais"`
}

type HuespedRequest struct {
	TipoDocumento   string        `json:"tipoDocumento" binding:"required,enum=tipo_documento"`
	NumeroDocumento string        `json:"numeroDocumento" binding:"required"`
	Apellido        string        `json:"apellido"`
	Nombres         string        `json:"nombres"`
	CUIT            string        `json:"cuit"`
	PosicionIVA     string        `json:"posicionIva" binding:"omitempty,enum=posicion_iva"`
	FechaNacimiento string        `json:"fechaNacimiento"`
	Nacionalidad    string        `json:"nacionalidad"`
	Direccion       *DireccionDTO `json:"direccion"`
	Telefonos       []string      `json:"telefonos"`
	Emails          []string      `json:"emails"`
	Ocupaciones     []string      `json:"ocupaciones"`
}

type HuespedGuardadoResponse struct {
	ID     uint `json:"id"`
	Creado bool `json:"creado"`
}

type PersonaJuridicaRequest struct {
	RazonSocial string        `json:"razonSocial"`
	CUIT        string        `json:"cuit"`
	Telefono    string        `json:"telefono"`
	Direccion   *DireccionDTO `json:"direccion"`
}

type DetalleFacturaRequest struct {
	Numero     int    `json:"numero" binding:"required,gt=0"`
	HoraSalida string `json:"horaSalida"`
}

type ItemDetalle struct {
	Descripcion    string          `json:"descripcion"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type OcupanteDTO struct {
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Nombre          string `json:"nombre"`
	EsResponsable   bool   `json:"esResponsable"`
	MayorDeEdad     bool   `json:"mayorDeEdad"`
}

type DetalleFacturaResponse struct {
	EstadiaID   uint            `json:"estadiaId"`
	Numero      int             `json:"numero"`
	Ocupantes   []OcupanteDTO   `json:"ocupantes"`
	Items       []ItemDetalle   `json:"items"`
	ImporteNeto decimal.Decimal `json:"importeNeto"`
	IVA         decimal.Decimal `json:"iva"`
	Total       decimal.Decimal `json:"total"`
}

// NuevaFacturaRequest bills a stay to either a guest (by document) or a company (by CUIT).
type NuevaFacturaRequest struct {
	EstadiaID  uint          `json:"estadiaId" binding:"required"`
	HoraSalida string        `json:"horaSalida"`
	Huesped    *DocumentoRef `json:"huesped"`
	CUIT       string        `json:"cuit"`
}

type NotaCreditoRequest struct {
	FacturaIDs []uint `json:"facturaIds" binding:"required,min=1"`
}

type EfectivoDTO struct {
	Importe decimal.Decimal `json:"importe"`
}

type ChequeDTO struct {
	NumeroCheque string          `json:"numeroCheque"`
	Banco        string          `json:"banco"`
	Plaza        string          `json:"plaza"`
	FechaCobro   string          `json:"fechaCobro"`
	Importe      decimal.Decimal `json:"importe"`
}

type TarjetaDTO struct {
	NumeroTarjeta string          `json:"numeroTarjeta"`
	Banco         string          `json:"banco"`
	Titular       string          `json:"titular"`
	Vencimiento   string          `json:"vencimiento"` // MM/AA
	Cuotas        int             `json:"cuotas"`
	Importe       decimal.Decimal `json:"importe"`
}

// MedioPagoDTO must carry exactly one instrument.
type MedioPagoDTO struct {
	Efectivo       *EfectivoDTO `json:"efectivo"`
	Cheque         *ChequeDTO   `json:"cheque"`
	TarjetaDebito  *TarjetaDTO  `json:"tarjetaDebito"`
	TarjetaCredito *TarjetaDTO  `json:"tarjetaCredito"`
}

type NuevoPagoRequest struct {
	FacturaID  uint            `json:"facturaId" binding:"required"`
	Moneda     string          `json:"moneda" binding:"omitempty,enum=moneda"`
	Cotizacion decimal.Decimal `json:"cotizacion"`
	Medios     []MedioPagoDTO  `json:"medios" binding:"required,min=1"`
}

type PagoResponse struct {
	PagoID        uint            `json:"pagoId"`
	Importe       decimal.Decimal `json:"importe"`
	Vuelto        decimal.Decimal `json:"vuelto"`
	Saldo         decimal.Decimal `json:"saldo"`
	EstadoFactura string          `json:"estadoFactura"`
}
