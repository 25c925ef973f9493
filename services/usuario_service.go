package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hotel-gestion/apperr"
	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/repositories"
	"hotel-gestion/storage"
)

// ErrCredenciales covers unknown users, wrong passwords and dead tokens alike.
var ErrCredenciales = errors.New("credenciales inválidas")

type UsuarioService struct {
	repos    *repositories.Repositories
	sesiones storage.SessionStore
	opts     Opciones
}

func NewUsuarioService(repos *repositories.Repositories, sesiones storage.SessionStore, opts Opciones) *UsuarioService {
	if sesiones == nil {
		sesiones = storage.NewMemorySessionStore()
	}
	return &UsuarioService{repos: repos, sesiones: sesiones, opts: opts.withDefaults()}
}

// Claims of a front desk session token.
type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

func (s *UsuarioService) Registrar(ctx context.Context, req dto.RegistrarUsuarioRequest) (*models.Usuario, error) {
	nombre := strings.TrimSpace(req.Nombre)
	var problemas []string
	problemas = append(problemas, requerido(nombre, "nombre")...)
	if len(req.Contrasenia) < 6 {
		problemas = append(problemas, "la contraseña debe tener al menos 6 caracteres")
	}
	if err := apperr.Validation(problemas...); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasenia), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash contraseña: %w", err)
	}
	u := &models.Usuario{Nombre: nombre, Contrasenia: string(hash)}
	if err := s.repos.Usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("✅ Usuario %s registrado", u.Nombre)
	return u, nil
}

// Login checks the password and issues a signed token whose id is kept in the session store.
func (s *UsuarioService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := s.repos.Usuarios.FindByNombre(ctx, strings.TrimSpace(req.Nombre))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Contrasenia), []byte(req.Contrasenia)) != nil {
		log.Printf("⚠️ Login fallido para %s", u.Nombre)
		return nil, ErrCredenciales
	}

	ahora := s.opts.Now()
	expira := ahora.Add(s.opts.TokenTTL)
	claims := Claims{
		Usuario: u.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(expira),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.opts.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	if err := s.sesiones.Guardar(ctx, claims.ID, u.Nombre, s.opts.TokenTTL); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	log.Printf("🔑 Usuario %s inició sesión", u.Nombre)
	return &dto.LoginResponse{Token: token, Usuario: u.Nombre, Expira: expira.Unix()}, nil
}

// ValidarToken verifies signature and expiry and that the session was not revoked.
func (s *UsuarioService) ValidarToken(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrCredenciales
	}
	if !claims.VerifyExpiresAt(s.opts.Now(), true) {
		return nil, ErrCredenciales
	}
	vigente, err := s.sesiones.Existe(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("consultar sesión: %w", err)
	}
	if !vigente {
		return nil, ErrCredenciales
	}
	return claims, nil
}

// CambiarContrasenia re-checks the current password before storing the new hash.
func (s *UsuarioService) CambiarContrasenia(ctx context.Context, nombre string, req dto.CambioContraseniaRequest) error {
	u, err := s.repos.Usuarios.FindByNombre(ctx, nombre)
	if errors.Is(err, apperr.ErrNotFound) {
		return ErrCredenciales
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Contrasenia), []byte(req.Actual)) != nil {
		return ErrCredenciales
	}
	if len(req.Nueva) < 6 {
		return apperr.Validation("la contraseña debe tener al menos 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Nueva), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash contraseña: %w", err)
	}
	if err := s.repos.Usuarios.UpdateContrasenia(ctx, u.ID, string(hash)); err != nil {
		return err
	}
	log.Printf("🔑 Usuario %s cambió su contraseña", u.Nombre)
	return nil
}

func (s *UsuarioService) Logout(ctx context.Context, raw string) error {
	claims, err := s.ValidarToken(ctx, raw)
	if err != nil {
		return err
	}
	if err := s.sesiones.Revocar(ctx, claims.ID); err != nil {
		return fmt.Errorf("revocar sesión: %w", err)
	}
	log.Printf("👋 Usuario %s cerró sesión", claims.Usuario)
	return nil
}
