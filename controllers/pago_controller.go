package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type PagoController struct {
	Svc *services.PagoService
}

func NewPagoController(svc *services.PagoService) *PagoController {
	return &PagoController{Svc: svc}
}

// ----------------------------------------------------
// POST /api/pagos
// ----------------------------------------------------
func (pc *PagoController) Registrar(c *gin.Context) {
	var req dto.NuevoPagoRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := pc.Svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, resp)
}

// ----------------------------------------------------
// GET /api/pagos?factura=
// ----------------------------------------------------
func (pc *PagoController) DeFactura(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("factura"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "factura inválida")
		return
	}
	pagos, err := pc.Svc.DeFactura(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, pagos)
}
