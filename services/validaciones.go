package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"hotel-gestion/dto"
	"hotel-gestion/models"
	"hotel-gestion/utils"
)

// MaxDiasRangoDefault caps every date range a request may ask for.
const MaxDiasRangoDefault = 60

var (
	validate         = validator.New()
	documentoPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,15}$`)
	cuitPattern      = regexp.MustCompile(`^\d{2}-?\d{8}-?\d$`)
)

// Rango is a half-open range of calendar days [Desde, Hasta).
type Rango struct {
	Desde time.Time
	Hasta time.Time
}

func (r Rango) Noches() int { return utils.Noches(r.Desde, r.Hasta) }

func (r Rango) Solapa(o Rango) bool {
	return r.Desde.Before(o.Hasta) && r.Hasta.After(o.Desde)
}

// ParseRango parses both ends and applies ValidarRango.
func ParseRango(desde, hasta string, maxDias int) (Rango, []string) {
	var problemas []string
	d, err := utils.ParseFecha(desde)
	if err != nil {
		problemas = append(problemas, "desde: "+err.Error())
	}
	h, err := utils.ParseFecha(hasta)
	if err != nil {
		problemas = append(problemas, "hasta: "+err.Error())
	}
	if len(problemas) > 0 {
		return Rango{}, problemas
	}
	r := Rango{Desde: d, Hasta: h}
	return r, ValidarRango(r, maxDias)
}

// ValidarRango requires Hasta after Desde and at most maxDias days between them.
func ValidarRango(r Rango, maxDias int) []string {
	if maxDias <= 0 {
		maxDias = MaxDiasRangoDefault
	}
	if !r.Hasta.After(r.Desde) {
		return []string{fmt.Sprintf("la fecha hasta (%s) debe ser posterior a la fecha desde (%s)",
			r.Hasta.Format(utils.LayoutFecha), r.Desde.Format(utils.LayoutFecha))}
	}
	if dias := r.Noches(); dias > maxDias {
		return []string{fmt.Sprintf("el rango de %d días supera el máximo de %d", dias, maxDias)}
	}
	return nil
}

func requerido(valor, campo string) []string {
	if strings.TrimSpace(valor) == "" {
		return []string{campo + " es obligatorio"}
	}
	return nil
}

func normalizarEnum(tabla *utils.EnumTable, valor, campo string) (string, []string) {
	v, ok := tabla.Normalize(valor)
	if !ok {
		return "", []string{fmt.Sprintf("%s %q no es válido (valores: %s)", campo, valor, strings.Join(tabla.Values(), ", "))}
	}
	return v, nil
}

// normalizarDocumento folds the type and strips dots / spaces / dashes from the number.
func normalizarDocumento(ref dto.DocumentoRef) (string, string, []string) {
	tipo, problemas := normalizarEnum(models.TiposDocumento, ref.TipoDocumento, "tipo de documento")
	numero := strings.NewReplacer(".", "", " ", "", "-", "").Replace(strings.TrimSpace(ref.NumeroDocumento))
	if !documentoPattern.MatchString(numero) {
		problemas = append(problemas, fmt.Sprintf("número de documento %q inválido: 6 a 15 letras o dígitos", ref.NumeroDocumento))
	}
	return tipo, strings.ToUpper(numero), problemas
}

// cuitValido checks the format and the mod-11 verifier digit.
func cuitValido(cuit string) bool {
	if !cuitPattern.MatchString(cuit) {
		return false
	}
	digits := strings.ReplaceAll(cuit, "-", "")
	pesos := []int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}
	suma := 0
	for i, p := range pesos {
		suma += int(digits[i]-'0') * p
	}
	verificador := 11 - suma%11
	switch verificador {
	case 11:
		verificador = 0
	case 10:
		verificador = 9
	}
	return int(digits[10]-'0') == verificador
}

func normalizarCUIT(cuit string) string {
	d := strings.ReplaceAll(strings.TrimSpace(cuit), "-", "")
	if len(d) != 11 {
		return strings.TrimSpace(cuit)
	}
	return d[:2] + "-" + d[2:10] + "-" + d[10:]
}

func emailValido(email string) bool {
	return validate.Var(email, "required,email") == nil
}
