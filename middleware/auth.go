package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-gestion/services"
	"hotel-gestion/utils"
)

// UsuarioKey holds the authenticated user name in the gin context.
const UsuarioKey = "usuario"

type TokenValidator interface {
	ValidarToken(ctx context.Context, raw string) (*services.Claims, error)
}

func BearerToken(c *gin.Context) string {
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
}

// Autenticar rejects requests without a live session token.
func Autenticar(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := BearerToken(c)
		if raw == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Token requerido")
			c.Abort()
			return
		}
		claims, err := v.ValidarToken(c.Request.Context(), raw)
		if errors.Is(err, services.ErrCredenciales) {
			utils.JSONError(c, http.StatusUnauthorized, "Token inválido o sesión cerrada")
			c.Abort()
			return
		}
		if err != nil {
			log.Printf("❌ No se pudo consultar la sesión: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "No se pudo verificar la sesión")
			c.Abort()
			return
		}
		c.Set(UsuarioKey, claims.Usuario)
		c.Next()
	}
}
