package models

import "hotel-gestion/utils"

const (
	HabitacionIndividualEstandar = "INDIVIDUAL_ESTANDAR"
	HabitacionDobleEstandar      = "DOBLE_ESTANDAR"
	HabitacionDobleSuperior      = "DOBLE_SUPERIOR"
	HabitacionSuperiorFamilyPlan = "SUPERIOR_FAMILY_PLAN"
	HabitacionSuiteDoble         = "SUITE_DOBLE"
)

const (
	EstadoDisponible      = "DISPONIBLE"
	EstadoOcupada         = "OCUPADA"
	EstadoReservada       = "RESERVADA"
	EstadoFueraDeServicio = "FUERA_DE_SERVICIO"
)

const (
	ReservaActiva       = "ACTIVA"
	ReservaCancelada    = "CANCELADA"
	ReservaEfectivizada = "EFECTIVIZADA"
)

const (
	EstadiaActiva     = "ACTIVA"
	EstadiaFinalizada = "FINALIZADA"
)

const (
	DocumentoDNI       = "DNI"
	DocumentoLE        = "LE"
	DocumentoLC        = "LC"
	DocumentoPasaporte = "PASAPORTE"
	DocumentoOtro      = "OTRO"
)

const (
	IVAConsumidorFinal      = "CONSUMIDOR_FINAL"
	IVAResponsableInscripto = "RESPONSABLE_INSCRIPTO"
	IVAMonotributo          = "MONOTRIBUTO"
	IVAExento               = "EXENTO"
)

const (
	ResponsableFisica   = "FISICA"
	ResponsableJuridica = "JURIDICA"
)

const (
	FacturaPendiente = "PENDIENTE"
	FacturaPagada    = "PAGADA"
	FacturaAnulada   = "ANULADA"

	FacturaTipoA = "A"
	FacturaTipoB = "B"
)

const (
	MedioEfectivo       = "EFECTIVO"
	MedioCheque         = "CHEQUE"
	MedioTarjetaDebito  = "TARJETA_DEBITO"
	MedioTarjetaCredito = "TARJETA_CREDITO"
)

const (
	MonedaPesos   = "PESOS"
	MonedaDolares = "DOLARES"
	MonedaEuros   = "EUROS"
	MonedaReales  = "REALES"
)

// Lookup tables for values arriving from clients in any case or accent.
var (
	TiposHabitacion = utils.NewEnumTable("tipo_habitacion",
		HabitacionIndividualEstandar, HabitacionDobleEstandar, HabitacionDobleSuperior,
		HabitacionSuperiorFamilyPlan, HabitacionSuiteDoble,
	)
	EstadosHabitacion = utils.NewEnumTable("estado_habitacion",
		EstadoDisponible, EstadoOcupada, EstadoReservada, EstadoFueraDeServicio,
	).Alias("Mantenimiento", EstadoFueraDeServicio)
	TiposDocumento = utils.NewEnumTable("tipo_documento",
		DocumentoDNI, DocumentoLE, DocumentoLC, DocumentoPasaporte, DocumentoOtro,
	).Alias("Libreta de Enrolamiento", DocumentoLE).Alias("Libreta Cívica", DocumentoLC)
	PosicionesIVA = utils.NewEnumTable("posicion_iva",
		IVAConsumidorFinal, IVAResponsableInscripto, IVAMonotributo, IVAExento,
	).Alias("Monotributista", IVAMonotributo)
	TiposMedioPago = utils.NewEnumTable("medio_pago",
		MedioEfectivo, MedioCheque, MedioTarjetaDebito, MedioTarjetaCredito,
	).Alias("Débito", MedioTarjetaDebito).Alias("Crédito", MedioTarjetaCredito)
	Monedas = utils.NewEnumTable("moneda",
		MonedaPesos, MonedaDolares, MonedaEuros, MonedaReales,
	).Alias("ARS", MonedaPesos).Alias("USD", MonedaDolares).Alias("EUR", MonedaEuros).Alias("BRL", MonedaReales)
)

// EnumTables indexes the tables by name for request validation.
var EnumTables = map[string]*utils.EnumTable{
	TiposHabitacion.Nombre:   TiposHabitacion,
	EstadosHabitacion.Nombre: EstadosHabitacion,
	TiposDocumento.Nombre:    TiposDocumento,
	PosicionesIVA.Nombre:     PosicionesIVA,
	TiposMedioPago.Nombre:    TiposMedioPago,
	Monedas.Nombre:           Monedas,
}
