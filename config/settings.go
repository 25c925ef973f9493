package config

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hotel-gestion/utils"
)

// Settings is read once from the environment at startup (after godotenv.Load).
type Settings struct {
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	RedisURL     string
	CORSOrigins  []string
	PuntoVenta   int
	AlicuotaIVA  decimal.Decimal
	MaxDiasRango int
	SQLitePath   string
}

func LoadSettings() Settings {
	s := Settings{
		Port:         utils.EnvOrDefault("PORT", "8080"),
		JWTSecret:    utils.EnvOrDefault("JWT_SECRET", ""),
		TokenTTL:     utils.EnvDuration("TOKEN_TTL", 8*time.Hour),
		RedisURL:     utils.EnvOrDefault("REDIS_URL", ""),
		CORSOrigins:  utils.EnvList("CORS_ORIGINS"),
		PuntoVenta:   utils.EnvInt("PUNTO_VENTA", 1),
		AlicuotaIVA:  decimal.RequireFromString("0.21"),
		MaxDiasRango: utils.EnvInt("MAX_DIAS_RANGO", 60),
		SQLitePath:   utils.EnvOrDefault("SQLITE_PATH", ""),
	}
	if raw := utils.EnvOrDefault("ALICUOTA_IVA", ""); raw != "" {
		if d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ".")); err == nil {
			s.AlicuotaIVA = d
		}
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"*"}
	}
	return s
}
