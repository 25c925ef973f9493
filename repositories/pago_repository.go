package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-gestion/apperr"
	"hotel-gestion/models"
)

type PagoRepository struct {
	DB *gorm.DB
}

func NewPagoRepository(db *gorm.DB) *PagoRepository {
	return &PagoRepository{DB: db}
}

// Create writes the pago row and, per medio, its instrument row (efectivo insert,
// cheque / tarjeta upsert by number) followed by the medio_pago row that points at it.
// Either every row is written or none is.
func (r *PagoRepository) Create(ctx context.Context, p *models.Pago) error {
	for i := range p.Medios {
		if err := p.Medios[i].CheckSubtipo(); err != nil {
			return apperr.Validation(err.Error())
		}
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return apperr.Persistence("crear pago", err)
		}
		for i := range p.Medios {
			m := &p.Medios[i]
			m.ID = 0
			m.PagoID = p.ID
			if err := r.createInstrumento(tx, m); err != nil {
				return err
			}
			if err := tx.Create(m).Error; err != nil {
				return apperr.Persistence("crear medio_pago", err)
			}
		}
		return nil
	})
}

func (r *PagoRepository) createInstrumento(tx *gorm.DB, m *models.MedioPago) error {
	m.EfectivoID, m.NumeroCheque, m.NumeroTarjeta = nil, nil, nil
	switch {
	case m.Efectivo != nil:
		m.Tipo = models.MedioEfectivo
		m.Efectivo.ID = 0
		if err := tx.Create(m.Efectivo).Error; err != nil {
			return apperr.Persistence("crear efectivo", err)
		}
		m.EfectivoID = &m.Efectivo.ID
	case m.Cheque != nil:
		m.Tipo = models.MedioCheque
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(m.Cheque).Error; err != nil {
			return apperr.Persistence("crear cheque", err)
		}
		m.NumeroCheque = &m.Cheque.NumeroCheque
	case m.TarjetaDebito != nil:
		m.Tipo = models.MedioTarjetaDebito
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(m.TarjetaDebito).Error; err != nil {
			return apperr.Persistence("crear tarjeta_debito", err)
		}
		m.NumeroTarjeta = &m.TarjetaDebito.NumeroTarjeta
	case m.TarjetaCredito != nil:
		m.Tipo = models.MedioTarjetaCredito
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(m.TarjetaCredito).Error; err != nil {
			return apperr.Persistence("crear tarjeta_credito", err)
		}
		m.NumeroTarjeta = &m.TarjetaCredito.NumeroTarjeta
	}
	return nil
}

// FindByFactura returns the invoice's payments with every medio and instrument loaded.
func (r *PagoRepository) FindByFactura(ctx context.Context, facturaID uint) ([]models.Pago, error) {
	db := r.DB.WithContext(ctx)
	var pagos []models.Pago
	if err := db.Where("id_factura = ?", facturaID).Order("fecha ASC, id ASC").Find(&pagos).Error; err != nil {
		return nil, apperr.Persistence("listar pagos", err)
	}
	for i := range pagos {
		var medios []models.MedioPago
		if err := db.Where("id_pago = ?", pagos[i].ID).Order("id ASC").Find(&medios).Error; err != nil {
			return nil, apperr.Persistence("listar medios de pago", err)
		}
		for j := range medios {
			if err := r.loadInstrumento(db, &medios[j]); err != nil {
				return nil, err
			}
		}
		pagos[i].Medios = medios
	}
	return pagos, nil
}

func (r *PagoRepository) loadInstrumento(db *gorm.DB, m *models.MedioPago) error {
	var err error
	switch {
	case m.EfectivoID != nil:
		m.Efectivo = &models.Efectivo{}
		err = db.First(m.Efectivo, *m.EfectivoID).Error
	case m.NumeroCheque != nil:
		m.Cheque = &models.Cheque{}
		err = db.Where("numero_cheque = ?", *m.NumeroCheque).First(m.Cheque).Error
	case m.NumeroTarjeta != nil && m.Tipo == models.MedioTarjetaCredito:
		m.TarjetaCredito = &models.TarjetaCredito{}
		err = db.Where("numero_tarjeta = ?", *m.NumeroTarjeta).First(m.TarjetaCredito).Error
	case m.NumeroTarjeta != nil:
		m.TarjetaDebito = &models.TarjetaDebito{}
		err = db.Where("numero_tarjeta = ?", *m.NumeroTarjeta).First(m.TarjetaDebito).Error
	}
	return apperr.Persistence("cargar instrumento de pago", err)
}

// TotalAplicado is what previous payments settled on the invoice, in pesos.
func (r *PagoRepository) TotalAplicado(ctx context.Context, facturaID uint) (decimal.Decimal, error) {
	var pagos []models.Pago
	if err := r.DB.WithContext(ctx).Where("id_factura = ?", facturaID).Find(&pagos).Error; err != nil {
		return decimal.Zero, apperr.Persistence("sumar pagos", err)
	}
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.Importe.Sub(p.Vuelto))
	}
	return total, nil
}
