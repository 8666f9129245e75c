// Package fetcher retrieves raw animal records from the animal-data API.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
)

// Fetch errors.
var (
	// ErrUnexpectedStatusCode indicates a non-success HTTP response.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrMalformedResponse indicates a response body that is not a record list.
	ErrMalformedResponse = errors.New("malformed response body")
)

// Client queries the animal-data API. One outbound GET per Fetch call, a
// single attempt: failures surface to the caller, there is no retry policy.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates an API client. The key is passed in explicitly so tests
// can construct clients against local servers without touching the environment.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("X-Api-Key", apiKey)
	client.SetHeader("Accept", "application/json")

	return &Client{
		http:    client,
		baseURL: baseURL,
	}
}

// Fetch retrieves all records matching the given animal name. A successful
// response with zero matches returns an empty slice and no error.
func (c *Client) Fetch(ctx context.Context, animalName string) ([]models.RawRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", animalName).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("animal api request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode())
	}

	var records []models.RawRecord
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return records, nil
}
