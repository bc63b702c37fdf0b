package chat

import (
	"strconv"
	"strings"
	"unicode"
)

// QuoteLineCandidate par (pista de producto, cantidad) extraído de un mensaje
// de cotización. Transitorio: no se persiste.
type QuoteLineCandidate struct {
	Hint     string
	Quantity int
}

// fallbackVocabulary categorías del catálogo que habilitan la extracción de
// respaldo cuando el mensaje no trae cantidades explícitas.
var fallbackVocabulary = []string{
	"lector", "impresora", "tarjeta", "software", "torniquete", "biométrico", "credencial",
}

// ExtractQuoteItems recorre el mensaje de izquierda a derecha buscando tramos
// no solapados de la forma <entero><espacios><palabras>. La primera coincidencia
// gana y el escaneo continúa después de su fin; las interpretaciones solapadas
// son ambiguas a propósito. Si no aparece ninguna cantidad, se emite a lo sumo
// un candidato de respaldo con cantidad 1 usando la primera categoría del
// vocabulario presente en el mensaje. Una secuencia vacía significa "no pude
// interpretar, pedir aclaración", nunca un error.
func ExtractQuoteItems(message string) []QuoteLineCandidate {
	var items []QuoteLineCandidate

	runes := []rune(message)
	i := 0
	for i < len(runes) {
		if !unicode.IsDigit(runes[i]) {
			i++
			continue
		}

		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		quantity, err := strconv.Atoi(string(runes[start:i]))

		// La forma exige al menos un espacio entre la cantidad y la pista.
		if i >= len(runes) || !unicode.IsSpace(runes[i]) {
			continue
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}

		hintStart := i
		for i < len(runes) && isHintRune(runes[i]) {
			i++
		}
		hint := strings.ToLower(strings.TrimSpace(string(runes[hintStart:i])))

		// Tramos rechazados se saltan sin abortar el escaneo.
		if err != nil || quantity <= 0 || len([]rune(hint)) <= 2 {
			continue
		}
		items = append(items, QuoteLineCandidate{Hint: hint, Quantity: quantity})
	}

	if len(items) == 0 {
		if hint, ok := firstVocabularyHit(message); ok {
			items = append(items, QuoteLineCandidate{Hint: hint, Quantity: 1})
		}
	}

	return items
}

// isHintRune letras del español (con acentos y eñe) y espacios.
func isHintRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch unicode.ToLower(r) {
	case 'á', 'é', 'í', 'ó', 'ú', 'ñ':
		return true
	}
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// firstVocabularyHit devuelve la categoría del vocabulario que aparece primero
// en el mensaje (comparación insensible a acentos). Solo un candidato aunque
// haya varias categorías presentes.
func firstVocabularyHit(message string) (string, bool) {
	normalized := normalizeForMatch(message)
	best, bestIdx := "", -1
	for _, keyword := range fallbackVocabulary {
		idx := strings.Index(normalized, normalizeForMatch(keyword))
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx {
			best, bestIdx = keyword, idx
		}
	}
	return best, bestIdx >= 0
}
