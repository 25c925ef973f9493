package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type ResponsableController struct {
	Svc      *services.ResponsableService
	Facturas *services.FacturaService
}

func NewResponsableController(svc *services.ResponsableService, facturas *services.FacturaService) *ResponsableController {
	return &ResponsableController{Svc: svc, Facturas: facturas}
}

// ----------------------------------------------------
// POST /api/responsables
// ----------------------------------------------------
func (rc *ResponsableController) CrearJuridica(c *gin.Context) {
	var req dto.PersonaJuridicaRequest
	if !bindJSON(c, &req) {
		return
	}
	rp, err := rc.Svc.CrearJuridica(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rp)
}

// ----------------------------------------------------
// GET /api/responsables?cuit=  |  ?razonSocial=
// ----------------------------------------------------
func (rc *ResponsableController) Buscar(c *gin.Context) {
	if cuit := strings.TrimSpace(c.Query("cuit")); cuit != "" {
		rp, err := rc.Svc.BuscarPorCUIT(c.Request.Context(), cuit)
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, rp)
		return
	}
	list, err := rc.Svc.Buscar(c.Request.Context(), c.Query("razonSocial"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

// ----------------------------------------------------
// GET /api/responsables/:id
// ----------------------------------------------------
func (rc *ResponsableController) Obtener(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	rp, err := rc.Svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rp)
}

// ----------------------------------------------------
// GET /api/responsables/:id/facturas-pendientes
// ----------------------------------------------------
func (rc *ResponsableController) FacturasPendientes(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	list, err := rc.Facturas.PendientesDe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}
