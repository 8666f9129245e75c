// Package normalizer flattens raw API records into display-ready animals.
package normalizer

import (
	"strings"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
)

// Normalizer maps raw records onto the flat Animal form. Missing fields are a
// local condition handled via placeholder substitution, never an error.
type Normalizer struct {
	placeholder string
}

// NewNormalizer creates a normalizer using the default placeholder.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithPlaceholder(models.Placeholder)
}

// NewNormalizerWithPlaceholder creates a normalizer with a custom placeholder.
func NewNormalizerWithPlaceholder(placeholder string) *Normalizer {
	if placeholder == "" {
		placeholder = models.Placeholder
	}

	return &Normalizer{placeholder: placeholder}
}

// Normalize flattens one raw record. Characteristic keys are lower-cased on
// ingest so filtering and display agree regardless of source casing; values
// and unknown keys are retained verbatim.
func (n *Normalizer) Normalize(raw models.RawRecord) models.Animal {
	characteristics := make(map[string]string, len(raw.Characteristics))

	for key, value := range raw.Characteristics {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}

		characteristics[key] = value
	}

	location := ""
	if len(raw.Locations) > 0 {
		location = raw.Locations[0]
	}

	return models.Animal{
		Name:            n.orPlaceholder(raw.Name),
		Diet:            n.orPlaceholder(characteristics["diet"]),
		Location:        n.orPlaceholder(location),
		Type:            n.orPlaceholder(characteristics["type"]),
		Characteristics: characteristics,
	}
}

// NormalizeAll flattens a record sequence, preserving order.
func (n *Normalizer) NormalizeAll(records []models.RawRecord) []models.Animal {
	animals := make([]models.Animal, 0, len(records))

	for _, raw := range records {
		animals = append(animals, n.Normalize(raw))
	}

	return animals
}

func (n *Normalizer) orPlaceholder(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return n.placeholder
	}

	return value
}
