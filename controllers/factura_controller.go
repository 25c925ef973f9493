package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type FacturaController struct {
	Svc *services.FacturaService
}

func NewFacturaController(svc *services.FacturaService) *FacturaController {
	return &FacturaController{Svc: svc}
}

// ----------------------------------------------------
// POST /api/factura/detalle
// ----------------------------------------------------
func (fc *FacturaController) Detalle(c *gin.Context) {
	var req dto.DetalleFacturaRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := fc.Svc.CalcularDetalle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// ----------------------------------------------------
// POST /api/factura
// ----------------------------------------------------
func (fc *FacturaController) Facturar(c *gin.Context) {
	var req dto.NuevaFacturaRequest
	if !bindJSON(c, &req) {
		return
	}
	f, err := fc.Svc.Facturar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, f)
}

// ----------------------------------------------------
// GET /api/factura/:id
// ----------------------------------------------------
func (fc *FacturaController) Obtener(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	f, err := fc.Svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, f)
}

// ----------------------------------------------------
// GET /api/factura/:id/pdf
// ----------------------------------------------------
func (fc *FacturaController) PDF(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	doc, err := fc.Svc.PDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=factura-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", doc)
}

// ----------------------------------------------------
// POST /api/factura/notas-credito
// ----------------------------------------------------
func (fc *FacturaController) NotaCredito(c *gin.Context) {
	var req dto.NotaCreditoRequest
	if !bindJSON(c, &req) {
		return
	}
	nc, err := fc.Svc.GenerarNotaCredito(c.Request.Context(), req.FacturaIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, nc)
}
