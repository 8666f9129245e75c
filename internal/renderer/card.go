// Package renderer turns normalized animals into HTML cards and assembles the
// final document. All interpolated values pass through html/template escaping,
// so upstream data cannot break the page structure.
package renderer

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
	"github.com/ItsHarfer/My-Zootopia/pkg/textutil"
)

const cardTemplate = `<li class="cards__item">
  <div class="card__title">{{.Name}}</div>
  <div class="card__subtitle">{{.Type}}</div>
  <p class="card__text">
    <strong>Diet:</strong> {{.Diet}}<br/>
    <strong>Location:</strong> {{.Location}}<br/>
{{- range .Traits}}
    <strong>{{.Label}}:</strong> {{.Value}}<br/>
{{- end}}
  </p>
</li>
`

// trait is one labeled characteristic line on a card.
type trait struct {
	Label string
	Value string
}

// cardData is the template payload for a single card.
type cardData struct {
	Name     string
	Type     string
	Diet     string
	Location string
	Traits   []trait
}

// CardRenderer renders one animal into an HTML fragment.
type CardRenderer struct {
	tmpl *template.Template
}

// NewCardRenderer creates a card renderer with the fixed card template.
func NewCardRenderer() *CardRenderer {
	return &CardRenderer{
		tmpl: template.Must(template.New("card").Parse(cardTemplate)),
	}
}

// RenderCard produces the card fragment for one animal. Deterministic: equal
// animals yield byte-identical fragments (characteristics render sorted by key).
func (r *CardRenderer) RenderCard(animal models.Animal) (string, error) {
	keys := make([]string, 0, len(animal.Characteristics))

	for key := range animal.Characteristics {
		// diet and type already have dedicated lines on the card
		if key == "diet" || key == "type" {
			continue
		}

		keys = append(keys, key)
	}

	sort.Strings(keys)

	traits := make([]trait, 0, len(keys))
	for _, key := range keys {
		traits = append(traits, trait{
			Label: textutil.Titleize(key),
			Value: animal.Characteristics[key],
		})
	}

	data := cardData{
		Name:     animal.Name,
		Type:     animal.Type,
		Diet:     animal.Diet,
		Location: animal.Location,
		Traits:   traits,
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render card for %q: %w", animal.Name, err)
	}

	return sb.String(), nil
}

// RenderCards renders every animal in order.
func (r *CardRenderer) RenderCards(animals []models.Animal) ([]string, error) {
	fragments := make([]string, 0, len(animals))

	for _, animal := range animals {
		fragment, err := r.RenderCard(animal)
		if err != nil {
			return nil, err
		}

		fragments = append(fragments, fragment)
	}

	return fragments, nil
}
