package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-gestion/dto"
	"hotel-gestion/middleware"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

type UsuarioController struct {
	Svc *services.UsuarioService
}

func NewUsuarioController(svc *services.UsuarioService) *UsuarioController {
	return &UsuarioController{Svc: svc}
}

// ----------------------------------------------------
// POST /api/usuarios/login
// ----------------------------------------------------
func (uc *UsuarioController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := uc.Svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

// ----------------------------------------------------
// POST /api/usuarios
// ----------------------------------------------------
func (uc *UsuarioController) Registrar(c *gin.Context) {
	var req dto.RegistrarUsuarioRequest
	if !bindJSON(c, &req) {
		return
	}
	u, err := uc.Svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, u)
}

// ----------------------------------------------------
// POST /api/usuarios/logout
// ----------------------------------------------------
func (uc *UsuarioController) Logout(c *gin.Context) {
	if err := uc.Svc.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"sesionCerrada": true})
}

// ----------------------------------------------------
// PATCH /api/usuarios/contrasenia
// ----------------------------------------------------
func (uc *UsuarioController) CambiarContrasenia(c *gin.Context) {
	var req dto.CambioContraseniaRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := uc.Svc.CambiarContrasenia(c.Request.Context(), c.GetString(middleware.UsuarioKey), req); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"actualizada": true})
}
