package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type EstadiaController struct {
	Svc *services.EstadiaService
}

func NewEstadiaController(svc *services.EstadiaService) *EstadiaController {
	return &EstadiaController{Svc: svc}
}

// ----------------------------------------------------
// POST /api/estadias (check-in)
// ----------------------------------------------------
func (ec *EstadiaController) CheckIn(c *gin.Context) {
	var req dto.NuevaEstadiaRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := ec.Svc.CheckIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, e)
}

// ----------------------------------------------------
// GET /api/estadias/:id
// ----------------------------------------------------
func (ec *EstadiaController) Obtener(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	e, err := ec.Svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, e)
}

// ----------------------------------------------------
// GET /api/habitaciones/:numero/estadia
// ----------------------------------------------------
func (ec *EstadiaController) ActivaPorHabitacion(c *gin.Context) {
	numero, ok := paramInt(c, "numero")
	if !ok {
		return
	}
	e, err := ec.Svc.ActivaPorHabitacion(c.Request.Context(), numero)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, e)
}
