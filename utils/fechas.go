package utils

import (
	"fmt"
	"strings"
	"time"
)

const LayoutFecha = "2006-01-02"

var layoutsFecha = []string{
	LayoutFecha,
	"02/01/2006",
	"2/1/2006",
	time.RFC3339,
}

// ParseFecha accepts ISO dates, dd/mm/yyyy and RFC3339 and returns the calendar day.
func ParseFecha(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("fecha vacía")
	}
	for _, layout := range layoutsFecha {
		if t, err := time.Parse(layout, raw); err == nil {
			return SoloFecha(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q: se espera AAAA-MM-DD o DD/MM/AAAA", raw)
}

// SoloFecha drops the clock and zone; every stored date is UTC midnight.
func SoloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Noches counts nights in the half-open range [desde, hasta).
func Noches(desde, hasta time.Time) int {
	return int(SoloFecha(hasta).Sub(SoloFecha(desde)).Hours() / 24)
}

// Dias lists every day in [desde, hasta).
func Dias(desde, hasta time.Time) []time.Time {
	var out []time.Time
	for d := SoloFecha(desde); d.Before(SoloFecha(hasta)); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Edad returns the completed years between nacimiento and at.
func Edad(nacimiento, at time.Time) int {
	years := at.Year() - nacimiento.Year()
	if at.Month() < nacimiento.Month() || (at.Month() == nacimiento.Month() && at.Day() < nacimiento.Day()) {
		years--
	}
	return years
}

// ParseHora reads "HH:MM" and returns minutes after midnight.
func ParseHora(raw string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q: se espera HH:MM", raw)
	}
	return t.Hour()*60 + t.Minute(), nil
}
