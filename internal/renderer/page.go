package renderer

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
	"github.com/ItsHarfer/My-Zootopia/pkg/pagemeta"
)

// Assembly errors.
var (
	// ErrNoFragments indicates StatusOK was requested with nothing to show.
	ErrNoFragments = errors.New("status ok requires at least one card fragment")
	// ErrUnknownStatus indicates a status outside the three terminal states.
	ErrUnknownStatus = errors.New("unknown page status")
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.Stylesheet}}"/>
</head>
<body>
  <h1>{{.Title}}</h1>
  <ul class="cards">
{{.Content}}  </ul>
</body>
</html>
`

const noResultsTemplate = `<li class="cards__result">
  <h2>No results for &quot;{{.Query}}&quot;.</h2>
  <p>The search produced no matching animals. Try a different name or filter.</p>
</li>
`

const errorTemplate = `<li class="cards__error">
  <h2>Something went wrong.</h2>
  <p>The animal data could not be fetched. Please try again later.</p>
</li>
`

// pageData is the template payload for the full document. Content holds
// fragments this package rendered itself, already escaped.
type pageData struct {
	Title      string
	Stylesheet string
	Content    template.HTML
}

// Assembler builds the final HTML document out of fragments and a status.
type Assembler struct {
	page      *template.Template
	noResults *template.Template
	errBlock  *template.Template

	title      string
	stylesheet string
}

// NewAssembler creates an assembler. The stylesheet is referenced by relative
// path in the document head, never inlined.
func NewAssembler(title, stylesheet string) *Assembler {
	return &Assembler{
		page:       template.Must(template.New("page").Parse(pageTemplate)),
		noResults:  template.Must(template.New("no_results").Parse(noResultsTemplate)),
		errBlock:   template.Must(template.New("error").Parse(errorTemplate)),
		title:      title,
		stylesheet: stylesheet,
	}
}

// AssemblePage produces one complete, signed HTML document. The three states
// are mutually exclusive: StatusOK concatenates the card fragments, while
// StatusNoResults and StatusFetchError emit a single status block with no cards.
func (a *Assembler) AssemblePage(fragments []string, status models.PageStatus, query string) (string, error) {
	content, err := a.buildContent(fragments, status, query)
	if err != nil {
		return "", err
	}

	data := pageData{
		Title:      a.title,
		Stylesheet: a.stylesheet,
		Content:    template.HTML(content),
	}

	var sb strings.Builder
	if err := a.page.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to assemble page: %w", err)
	}

	return pagemeta.Sign(sb.String()), nil
}

func (a *Assembler) buildContent(fragments []string, status models.PageStatus, query string) (string, error) {
	switch status {
	case models.StatusOK:
		if len(fragments) == 0 {
			return "", ErrNoFragments
		}

		return strings.Join(fragments, ""), nil

	case models.StatusNoResults:
		var sb strings.Builder
		if err := a.noResults.Execute(&sb, struct{ Query string }{Query: query}); err != nil {
			return "", fmt.Errorf("failed to render no-results block: %w", err)
		}

		return sb.String(), nil

	case models.StatusFetchError:
		var sb strings.Builder
		if err := a.errBlock.Execute(&sb, nil); err != nil {
			return "", fmt.Errorf("failed to render error block: %w", err)
		}

		return sb.String(), nil

	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownStatus, status)
	}
}
