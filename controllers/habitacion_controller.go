package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type HabitacionController struct {
	Svc *services.HabitacionService
}

func NewHabitacionController(svc *services.HabitacionService) *HabitacionController {
	return &HabitacionController{Svc: svc}
}

// ----------------------------------------------------
// GET /api/habitaciones
// ----------------------------------------------------
func (hc *HabitacionController) Listar(c *gin.Context) {
	list, err := hc.Svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// ----------------------------------------------------
// POST /api/habitaciones
// ----------------------------------------------------
func (hc *HabitacionController) Crear(c *gin.Context) {
	var req dto.HabitacionRequest
	if !bindJSON(c, &req) {
		return
	}
	h, err := hc.Svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, h)
}

// ----------------------------------------------------
// GET /api/habitaciones/:numero
// ----------------------------------------------------
func (hc *HabitacionController) Obtener(c *gin.Context) {
	numero, ok := paramInt(c, "numero")
	if !ok {
		return
	}
	h, err := hc.Svc.Obtener(c.Request.Context(), numero)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, h)
}

// ----------------------------------------------------
// PATCH /api/habitaciones/:numero/estado
// ----------------------------------------------------
func (hc *HabitacionController) CambiarEstado(c *gin.Context) {
	numero, ok := paramInt(c, "numero")
	if !ok {
		return
	}
	var req dto.CambioEstadoRequest
	if !bindJSON(c, &req) {
		return
	}
	h, err := hc.Svc.CambiarEstado(c.Request.Context(), numero, req.Estado)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, h)
}

// ----------------------------------------------------
// GET /api/habitaciones/:numero/disponibilidad?desde=&hasta=
// ----------------------------------------------------
func (hc *HabitacionController) Disponibilidad(c *gin.Context) {
	numero, ok := paramInt(c, "numero")
	if !ok {
		return
	}
	resp, err := hc.Svc.Disponible(c.Request.Context(), numero, c.Query("desde"), c.Query("hasta"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// ----------------------------------------------------
// GET /api/habitaciones/grilla?desde=&hasta=
// ----------------------------------------------------
func (hc *HabitacionController) Grilla(c *gin.Context) {
	grilla, err := hc.Svc.Grilla(c.Request.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, grilla)
}
