package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hotel-gestion/apperr"
	"hotel-gestion/services"
	"hotel-gestion/utils"
)

// respondError maps the service error kinds onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	var pe *apperr.PersistenceError
	switch {
	case errors.As(err, &ve):
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Datos inválidos", ve.Problemas)
	case errors.Is(err, services.ErrCredenciales):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrDuplicate):
		utils.JSONError(c, http.StatusConflict, "Ya existe un registro con esos datos")
	case errors.Is(err, apperr.ErrConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.As(err, &pe):
		log.Printf("❌ DB ERROR (%s): %v", pe.Op, pe.Err)
		utils.JSONError(c, http.StatusInternalServerError, "Error de base de datos, la operación no se aplicó")
	default:
		log.Printf("❌ INTERNAL ERROR: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Error interno")
	}
}

// bindJSON binds the body and answers 400 itself when it cannot.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			detalles := make([]string, 0, len(ves))
			for _, fe := range ves {
				detalles = append(detalles, describirCampo(fe))
			}
			utils.JSONErrorDetails(c, http.StatusBadRequest, "Datos inválidos", detalles)
			return false
		}
		utils.JSONErrorDetails(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido", []string{err.Error()})
		return false
	}
	return true
}

func describirCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "enum":
		return fmt.Sprintf("%s: valor %v no reconocido", fe.Field(), fe.Value())
	case "gt", "min":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag())
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("%s inválido", name))
		return 0, false
	}
	return uint(v), true
}

func paramInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("%s inválido", name))
		return 0, false
	}
	return v, true
}
