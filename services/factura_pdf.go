package services

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"hotel-gestion/models"
	"hotel-gestion/utils"
)

func escribirFacturaPDF(w io.Writer, f *models.Factura, items []models.ItemFactura) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	numero := ""
	if f.Numero != nil {
		numero = *f.Numero
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Factura %s  N° %s", f.Tipo, numero)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, tr("Fecha de emisión: "+f.FechaEmision.Format(utils.LayoutFecha)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr("Responsable de pago: "+f.ResponsablePago.RazonSocial()))
	pdf.Ln(7)
	if cuit := f.ResponsablePago.CUIT(); cuit != "" {
		pdf.Cell(0, 7, "CUIT: "+cuit)
		pdf.Ln(7)
	}
	pdf.Cell(0, 7, tr("Condición frente al IVA: "+f.ResponsablePago.PosicionIVA()))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(100, 8, tr("Descripción"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Cant.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Precio", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Subtotal", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, it := range items {
		pdf.CellFormat(100, 8, tr(it.Descripcion), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", it.Cantidad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, "$ "+it.PrecioUnitario.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, "$ "+it.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Type B invoices show the final amount only.
	if f.Tipo == models.FacturaTipoA {
		pdf.CellFormat(155, 7, "Neto gravado", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "$ "+f.ImporteNeto.StringFixed(2), "", 1, "R", false, 0, "")
		pdf.CellFormat(155, 7, "IVA", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, "$ "+f.IVA.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(155, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "$ "+f.ImporteTotal.StringFixed(2), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
