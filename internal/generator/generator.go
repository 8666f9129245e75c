// Package generator orchestrates the fetch, normalize, filter and render
// stages into a single page-generation pass.
package generator

import (
	"context"
	"time"

	"github.com/ItsHarfer/My-Zootopia/internal/filter"
	"github.com/ItsHarfer/My-Zootopia/internal/logger"
	"github.com/ItsHarfer/My-Zootopia/internal/models"
	"github.com/ItsHarfer/My-Zootopia/internal/normalizer"
	"github.com/ItsHarfer/My-Zootopia/internal/renderer"
	"github.com/ItsHarfer/My-Zootopia/internal/validator"
)

// Fetcher retrieves raw records for an animal name. Satisfied by both the API
// client and the local-file client.
type Fetcher interface {
	Fetch(ctx context.Context, animalName string) ([]models.RawRecord, error)
}

// Result is the outcome of one generation pass. Document is always populated:
// a failed fetch still yields a complete error page.
type Result struct {
	Document string
	Status   models.PageStatus
	Animals  []models.Animal
}

// Generator wires the pipeline stages together. Stateless across runs.
type Generator struct {
	fetcher    Fetcher
	normalizer *normalizer.Normalizer
	cards      *renderer.CardRenderer
	assembler  *renderer.Assembler
	validator  *validator.DocumentValidator
	logger     *logger.Logger
}

// NewGenerator creates a generator with the given dependencies. The validator
// may be nil to skip the structural check.
func NewGenerator(fetcher Fetcher, norm *normalizer.Normalizer, cards *renderer.CardRenderer,
	assembler *renderer.Assembler, docValidator *validator.DocumentValidator, log *logger.Logger,
) *Generator {
	return &Generator{
		fetcher:    fetcher,
		normalizer: norm,
		cards:      cards,
		assembler:  assembler,
		validator:  docValidator,
		logger:     log,
	}
}

// Run executes one fetch → normalize → filter → render → assemble pass.
// Exactly one terminal state is produced: a populated card list, a no-results
// block, or an error block. Fetch failures are mapped onto the error page and
// do not fail the run; only rendering or validation faults return an error.
func (g *Generator) Run(ctx context.Context, query string, criterion *models.FilterCriterion) (*Result, error) {
	started := time.Now()

	records, err := g.fetcher.Fetch(ctx, query)
	if err != nil {
		g.logger.Error("fetch failed", "query", query, "err", err)

		return g.finish(nil, models.StatusFetchError, query, nil)
	}

	g.logger.Info("fetched records", "query", query, "count", len(records), "duration", time.Since(started))

	animals := g.normalizer.NormalizeAll(records)
	matched := filter.Apply(animals, criterion)

	if criterion != nil {
		g.logger.Info("applied filter", "key", criterion.Key, "value", criterion.Value,
			"before", len(animals), "after", len(matched))
	}

	if len(matched) == 0 {
		return g.finish(nil, models.StatusNoResults, query, nil)
	}

	fragments, err := g.cards.RenderCards(matched)
	if err != nil {
		return nil, err
	}

	return g.finish(fragments, models.StatusOK, query, matched)
}

func (g *Generator) finish(fragments []string, status models.PageStatus, query string, animals []models.Animal) (*Result, error) {
	document, err := g.assembler.AssemblePage(fragments, status, query)
	if err != nil {
		return nil, err
	}

	if g.validator != nil {
		if err := g.validator.Validate(document, status); err != nil {
			return nil, err
		}
	}

	g.logger.Info("page assembled", "status", status.String(), "cards", len(fragments))

	return &Result{
		Document: document,
		Status:   status,
		Animals:  animals,
	}, nil
}
