package integration

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItsHarfer/My-Zootopia/internal/fetcher"
	"github.com/ItsHarfer/My-Zootopia/internal/generator"
	"github.com/ItsHarfer/My-Zootopia/internal/logger"
	"github.com/ItsHarfer/My-Zootopia/internal/models"
	"github.com/ItsHarfer/My-Zootopia/internal/normalizer"
	"github.com/ItsHarfer/My-Zootopia/internal/renderer"
	"github.com/ItsHarfer/My-Zootopia/internal/validator"
	"github.com/ItsHarfer/My-Zootopia/pkg/pagemeta"
)

const fixturePath = "../fixtures/animals.json"

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()

	data, err := os.ReadFile(fixturePath)
	require.NoError(t, err)

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "fixture-key", r.Header.Get("X-Api-Key"))

		if r.URL.Query().Get("name") == "zzyx" {
			_, _ = w.Write([]byte(`[]`))

			return
		}

		_, _ = w.Write(data)
	}))
}

func newPipeline(src generator.Fetcher) *generator.Generator {
	return generator.NewGenerator(
		src,
		normalizer.NewNormalizer(),
		renderer.NewCardRenderer(),
		renderer.NewAssembler("My Animal Repository", "assets/styles.css"),
		validator.NewDocumentValidator(),
		logger.NewLoggerWithOutput("error", "text", io.Discard),
	)
}

func parseDoc(t *testing.T, document string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	require.NoError(t, err)

	return doc
}

func TestPipeline_FetchNormalizeRenderWrite(t *testing.T) {
	server := fixtureServer(t)
	defer server.Close()

	client := fetcher.NewClient(server.URL, "fixture-key", 5*time.Second)
	gen := newPipeline(client)

	result, err := gen.Run(context.Background(), "fox", nil)
	require.NoError(t, err)
	require.Equal(t, models.StatusOK, result.Status)

	doc := parseDoc(t, result.Document)
	assert.Equal(t, 3, doc.Find("li.cards__item").Length())

	// The record with no diet/type/locations renders with placeholders.
	body := result.Document
	assert.Contains(t, body, "Jellyfish")
	assert.Contains(t, body, models.Placeholder)

	// Signed document survives the write intact.
	outPath := filepath.Join(t.TempDir(), "animals.html")
	require.NoError(t, renderer.WritePage(outPath, result.Document, false))

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)

	ok, err := pagemeta.Verify(string(written))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPipeline_FilterByCharacteristic(t *testing.T) {
	server := fixtureServer(t)
	defer server.Close()

	gen := newPipeline(fetcher.NewClient(server.URL, "fixture-key", 5*time.Second))

	result, err := gen.Run(context.Background(), "fox",
		&models.FilterCriterion{Key: "skin_type", Value: "SCALES"})
	require.NoError(t, err)
	require.Equal(t, models.StatusOK, result.Status)

	doc := parseDoc(t, result.Document)
	require.Equal(t, 1, doc.Find("li.cards__item").Length())
	assert.Equal(t, "Snake", doc.Find(".card__title").Text())
}

func TestPipeline_NoResults(t *testing.T) {
	server := fixtureServer(t)
	defer server.Close()

	gen := newPipeline(fetcher.NewClient(server.URL, "fixture-key", 5*time.Second))

	result, err := gen.Run(context.Background(), "zzyx", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNoResults, result.Status)

	doc := parseDoc(t, result.Document)
	assert.Equal(t, 1, doc.Find("li.cards__result").Length())
	assert.Equal(t, 0, doc.Find("li.cards__item, li.cards__error").Length())
}

func TestPipeline_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gen := newPipeline(fetcher.NewClient(server.URL, "fixture-key", 5*time.Second))

	result, err := gen.Run(context.Background(), "fox", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFetchError, result.Status)

	doc := parseDoc(t, result.Document)
	assert.Equal(t, 1, doc.Find("li.cards__error").Length())
	assert.Equal(t, 0, doc.Find("li.cards__item, li.cards__result").Length())
}

func TestPipeline_LocalFileMode(t *testing.T) {
	gen := newPipeline(fetcher.NewLocalClient(fixturePath))

	result, err := gen.Run(context.Background(), "ignored", nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOK, result.Status)
	assert.Len(t, result.Animals, 3)
}
