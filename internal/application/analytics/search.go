package analytics

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone.
// Los nombres de producto vienen en portugués/español; "Razão" debe coincidir
// con la búsqueda "razao".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeTerm deja un término listo para comparación por subcadena:
// minúsculas y sin acentos.
func normalizeTerm(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// matchesTerm indica si alguno de los campos contiene el término normalizado.
// Con término vacío todo coincide.
func matchesTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(normalizeTerm(f), term) {
			return true
		}
	}
	return false
}
