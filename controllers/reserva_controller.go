package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type ReservaController struct {
	Svc *services.ReservaService
}

func NewReservaController(svc *services.ReservaService) *ReservaController {
	return &ReservaController{Svc: svc}
}

// ----------------------------------------------------
// POST /api/reservas
// ----------------------------------------------------
func (rc *ReservaController) Crear(c *gin.Context) {
	var req dto.NuevaReservaRequest
	if !bindJSON(c, &req) {
		return
	}
	reservas, err := rc.Svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservas)
}

// ----------------------------------------------------
// GET /api/reservas?apellido=&nombre=
// ----------------------------------------------------
func (rc *ReservaController) Buscar(c *gin.Context) {
	list, err := rc.Svc.Buscar(c.Request.Context(), c.Query("apellido"), c.Query("nombre"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// ----------------------------------------------------
// POST /api/reservas/cancelar
// ----------------------------------------------------
func (rc *ReservaController) Cancelar(c *gin.Context) {
	var req dto.CancelarReservasRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := rc.Svc.Cancelar(c.Request.Context(), req.IDs); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"canceladas": len(req.IDs)})
}
