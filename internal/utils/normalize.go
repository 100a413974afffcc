package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText remove acentos e diacríticos e converte para minúsculas.
// Exemplo: "Fotografia de Paisagens" -> "fotografia de paisagens"
// Usado para estabilizar texto livre antes da renderização do prompt.
func NormalizeText(text string) string {
	if text == "" {
		return text
	}

	// Remove acentos e diacríticos
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, _ := transform.String(t, text)

	return strings.ToLower(normalized)
}

// CollapseWhitespace substitui qualquer sequência de espaços em branco
// (incluindo quebras de linha) por um único espaço.
// Metadados de candidatos são renderizados em uma linha só do prompt;
// quebras de linha embutidas poderiam forjar entradas adicionais.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
