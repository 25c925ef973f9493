package utils

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldKey turns free text into the canonical enum spelling:
// "Fuera de servicio" -> "FUERA_DE_SERVICIO", "pasaporté" -> "PASAPORTE".
func FoldKey(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(raw))
	if err != nil {
		folded = strings.TrimSpace(raw)
	}
	folded = strings.ToUpper(folded)

	var sb strings.Builder
	lastUnderscore := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '_' || r == '.' || r == '/':
			if !lastUnderscore && sb.Len() > 0 {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "_")
}

// EnumTable is a lookup from folded keys to the value stored in the database.
// Tables are built once at package init and only read afterwards.
type EnumTable struct {
	Nombre string
	canon  map[string]string
	values []string
}

func NewEnumTable(nombre string, valores ...string) *EnumTable {
	t := &EnumTable{Nombre: nombre, canon: make(map[string]string, len(valores))}
	for _, v := range valores {
		t.canon[FoldKey(v)] = v
		t.values = append(t.values, v)
	}
	sort.Strings(t.values)
	return t
}

// Alias registers an extra spelling for an existing value.
func (t *EnumTable) Alias(alias, valor string) *EnumTable {
	t.canon[FoldKey(alias)] = valor
	return t
}

// Normalize returns the stored spelling of raw, or false when raw is not a member.
func (t *EnumTable) Normalize(raw string) (string, bool) {
	v, ok := t.canon[FoldKey(raw)]
	return v, ok
}

func (t *EnumTable) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}
