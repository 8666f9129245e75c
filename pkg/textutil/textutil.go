// Package textutil provides text formatting helpers for labels and values.
package textutil

import "strings"

// Titleize converts a snake_case characteristic key into a display label,
// e.g. "skin_type" -> "Skin Type".
func Titleize(key string) string {
	words := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to maxLength runes, appending an ellipsis when cut.
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength]) + "..."
}

func capitalize(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + word[1:]
}
