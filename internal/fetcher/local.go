package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ItsHarfer/My-Zootopia/internal/models"
)

// LocalClient reads records from a local JSON file instead of the network.
// Useful for offline runs and fixtures; the file holds the same record list
// shape the API returns.
type LocalClient struct {
	path string
}

// NewLocalClient creates a client backed by the given JSON file.
func NewLocalClient(path string) *LocalClient {
	return &LocalClient{path: path}
}

// Fetch reads and decodes the backing file. The animal name is ignored; the
// file already is the result set.
func (c *LocalClient) Fetch(_ context.Context, _ string) ([]models.RawRecord, error) {
	records, err := ReadLocalFile(c.path)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ReadLocalFile decodes a record list from a JSON file on disk.
func ReadLocalFile(path string) ([]models.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read local file %s: %w", path, err)
	}

	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrMalformedResponse, path, err)
	}

	return records, nil
}
