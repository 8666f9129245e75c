// Package filter selects normalized animals by a single characteristic.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
)

// ErrInvalidCriterion indicates a criterion spec that is not "key=value".
var ErrInvalidCriterion = errors.New("invalid filter criterion, expected key=value")

// Apply returns the subsequence of animals whose characteristic under the
// criterion key case-insensitively equals the criterion value. A nil
// criterion returns the input unchanged. Animals lacking the key are
// excluded silently; input order is preserved.
func Apply(animals []models.Animal, criterion *models.FilterCriterion) []models.Animal {
	if criterion == nil {
		return animals
	}

	key := strings.ToLower(strings.TrimSpace(criterion.Key))
	want := strings.TrimSpace(criterion.Value)

	matched := make([]models.Animal, 0, len(animals))

	for _, animal := range animals {
		value, ok := animal.Characteristics[key]
		if !ok {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(value), want) {
			matched = append(matched, animal)
		}
	}

	return matched
}

// ParseCriterion parses a "key=value" spec into a criterion. An empty spec
// yields nil, meaning no filtering.
func ParseCriterion(spec string) (*models.FilterCriterion, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	key, value, found := strings.Cut(spec, "=")

	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if !found || key == "" || value == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCriterion, spec)
	}

	return &models.FilterCriterion{Key: key, Value: value}, nil
}
