// Package validator checks assembled documents before they are written.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
)

// Document validation errors.
var (
	ErrUnparsableDocument = errors.New("document could not be parsed")
	ErrMissingCardList    = errors.New("document has no cards container")
	ErrMixedStates        = errors.New("document mixes cards with a status block")
	ErrStatusMismatch     = errors.New("document content does not match its status")
)

// DocumentValidator verifies the structural invariants of a generated page:
// a cards container exists, and exactly one of cards, a no-results block or
// an error block is present, matching the declared status.
type DocumentValidator struct{}

// NewDocumentValidator creates a document validator.
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{}
}

// Validate parses the document and checks it against the given status.
func (v *DocumentValidator) Validate(document string, status models.PageStatus) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableDocument, err)
	}

	if doc.Find("ul.cards").Length() == 0 {
		return ErrMissingCardList
	}

	cards := doc.Find("li.cards__item").Length()
	resultBlocks := doc.Find("li.cards__result").Length()
	errorBlocks := doc.Find("li.cards__error").Length()

	if cards > 0 && resultBlocks+errorBlocks > 0 {
		return ErrMixedStates
	}

	switch status {
	case models.StatusOK:
		if cards == 0 || resultBlocks > 0 || errorBlocks > 0 {
			return fmt.Errorf("%w: expected cards only, got %d cards, %d result blocks, %d error blocks",
				ErrStatusMismatch, cards, resultBlocks, errorBlocks)
		}
	case models.StatusNoResults:
		if cards > 0 || resultBlocks != 1 || errorBlocks > 0 {
			return fmt.Errorf("%w: expected a single no-results block, got %d cards, %d result blocks, %d error blocks",
				ErrStatusMismatch, cards, resultBlocks, errorBlocks)
		}
	case models.StatusFetchError:
		if cards > 0 || resultBlocks > 0 || errorBlocks != 1 {
			return fmt.Errorf("%w: expected a single error block, got %d cards, %d result blocks, %d error blocks",
				ErrStatusMismatch, cards, resultBlocks, errorBlocks)
		}
	}

	return nil
}
