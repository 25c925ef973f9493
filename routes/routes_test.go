package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"hotel-gestion/config"
	"hotel-gestion/dto"
	"hotel-gestion/repositories"
	"hotel-gestion/services"
	"hotel-gestion/storage"
)

type respuesta struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []string        `json:"details"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenSQLite(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	svc := services.New(repositories.New(db), storage.NewMemorySessionStore(), services.Opciones{JWTSecret: "secreto-de-prueba"})
	_, err = svc.Usuarios.Registrar(context.Background(), dto.RegistrarUsuarioRequest{Nombre: "conserje", Contrasenia: "clave-segura"})
	require.NoError(t, err)

	return SetupRouter(config.Settings{CORSOrigins: []string{"http://localhost:5173"}}, svc)
}

func hacer(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, respuesta) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp respuesta
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, resp := hacer(t, r, http.MethodPost, "/api/usuarios/login", "", gin.H{"nombre": "conserje", "contrasenia": "clave-segura"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var lr dto.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Data, &lr))
	require.NotEmpty(t, lr.Token)
	return lr.Token
}

func TestHealthAndRequestID(t *testing.T) {
	r := setupTestRouter(t)
	w, _ := hacer(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAuthRequired(t *testing.T) {
	r := setupTestRouter(t)

	w, resp := hacer(t, r, http.MethodGet, "/api/habitaciones", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resp.Success)

	w, _ = hacer(t, r, http.MethodGet, "/api/habitaciones", "basura", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = hacer(t, r, http.MethodPost, "/api/usuarios/login", "", gin.H{"nombre": "conserje", "contrasenia": "otra"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, r)
	w, _ = hacer(t, r, http.MethodGet, "/api/habitaciones", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = hacer(t, r, http.MethodPost, "/api/usuarios/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = hacer(t, r, http.MethodGet, "/api/habitaciones", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHabitacionesEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	token := login(t, r)

	w, resp := hacer(t, r, http.MethodPost, "/api/habitaciones", token, gin.H{"numero": 101, "tipo": "penthouse", "capacidad": 1, "costoNoche": 1500})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, resp.Details, 1)
	assert.Contains(t, resp.Details[0], "Tipo")

	nueva := gin.H{"numero": 101, "tipo": "Individual Estándar", "capacidad": 1, "costoNoche": "1500.50"}
	w, _ = hacer(t, r, http.MethodPost, "/api/habitaciones", token, nueva)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = hacer(t, r, http.MethodPost, "/api/habitaciones", token, nueva)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = hacer(t, r, http.MethodGet, "/api/habitaciones/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = hacer(t, r, http.MethodGet, "/api/habitaciones/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = hacer(t, r, http.MethodPatch, "/api/habitaciones/101/estado", token, gin.H{"estado": "fuera de servicio"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var h struct {
		Estado string `json:"estado"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &h))
	assert.Equal(t, "FUERA_DE_SERVICIO", h.Estado)

	w, resp = hacer(t, r, http.MethodGet, "/api/habitaciones/grilla?desde=2026-04-01&hasta=2026-04-03", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var grilla []dto.GrillaHabitacion
	require.NoError(t, json.Unmarshal(resp.Data, &grilla))
	require.Len(t, grilla, 1)
	assert.Equal(t, "FUERA_DE_SERVICIO", grilla[0].Dias["2026-04-02"])

	w, resp = hacer(t, r, http.MethodPost, "/api/reservas", token, gin.H{"habitaciones": []gin.H{{"numero": 101, "desde": "2026-04-01", "hasta": "2026-04-02"}}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, resp.Details)
}
