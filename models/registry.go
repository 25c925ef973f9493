package models

// All lists every table in parent -> child order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Usuario{},
		&Habitacion{},
		&Direccion{},
		&Huesped{},
		&TelefonoHuesped{},
		&EmailHuesped{},
		&OcupacionHuesped{},
		&Reserva{},
		&Estadia{},
		&EstadiaHuesped{},
		&ResponsablePago{},
		&PersonaFisica{},
		&PersonaJuridica{},
		&NotaCredito{},
		&Factura{},
		&Pago{},
		&Efectivo{},
		&Cheque{},
		&TarjetaDebito{},
		&TarjetaCredito{},
		&MedioPago{},
	}
}
