package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/repositories"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type HuespedController struct {
	Svc *services.HuespedService
}

func NewHuespedController(svc *services.HuespedService) *HuespedController {
	return &HuespedController{Svc: svc}
}

// ----------------------------------------------------
// GET /api/huespedes?tipoDocumento=&numeroDocumento=&apellido=&nombres=
// ----------------------------------------------------
func (hc *HuespedController) Buscar(c *gin.Context) {
	list, err := hc.Svc.Buscar(c.Request.Context(), repositories.FiltroHuesped{
		TipoDocumento:   c.Query("tipoDocumento"),
		NumeroDocumento: c.Query("numeroDocumento"),
		Apellido:        c.Query("apellido"),
		Nombres:         c.Query("nombres"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// ----------------------------------------------------
// GET /api/huespedes/:tipo/:numero
// ----------------------------------------------------
func (hc *HuespedController) Obtener(c *gin.Context) {
	h, err := hc.Svc.Obtener(c.Request.Context(), c.Param("tipo"), c.Param("numero"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, h)
}

// ----------------------------------------------------
// POST /api/huespedes (alta o modificación)
// ----------------------------------------------------
func (hc *HuespedController) Guardar(c *gin.Context) {
	var req dto.HuespedRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := hc.Svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if resp.Creado {
		status = http.StatusCreated
	}
	utils.JSONSuccess(c, status, resp)
}

// ----------------------------------------------------
// DELETE /api/huespedes/:tipo/:numero
// ----------------------------------------------------
func (hc *HuespedController) Eliminar(c *gin.Context) {
	if err := hc.Svc.Eliminar(c.Request.Context(), c.Param("tipo"), c.Param("numero")); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"eliminado": true})
}
