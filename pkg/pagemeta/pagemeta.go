// Package pagemeta stamps generated HTML documents with a metadata block and
// verifies documents against the hash recorded in it.
package pagemeta

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "<!-- PAGEMETA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "PAGEMETA_END -->"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes one generation run of a page.
type Metadata struct {
	GeneratedAt time.Time
	RunID       string
	Hash        string
}

// metaRegex matches the entire metadata block including tags.
var metaRegex = regexp.MustCompile(`(?s)<!--\s*PAGEMETA_START\s*\n(.*?)\n\s*PAGEMETA_END\s*-->`)

// Extract removes the metadata block from a document and returns both the
// metadata and the cleaned document. The cleaned document is what gets hashed.
func Extract(document string) (*Metadata, string) {
	match := metaRegex.FindStringSubmatch(document)
	clean := metaRegex.ReplaceAllString(document, "")
	clean = strings.TrimRight(clean, "\n")

	if len(match) < 2 {
		return nil, clean
	}

	meta := &Metadata{}

	for _, line := range strings.Split(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.GeneratedAt = t
			}
		case "RUN_ID":
			meta.RunID = val
		case "HASH":
			meta.Hash = val
		}
	}

	return meta, clean
}

// CalculateHash computes the SHA-256 hash of the document without its metadata block.
func CalculateHash(document string) string {
	_, clean := Extract(document)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign appends a fresh metadata block with a new run id, timestamp and hash.
// Any existing block is replaced.
func Sign(document string) string {
	_, clean := Extract(document)

	hash := CalculateHash(clean)
	now := time.Now().UTC().Format(time.RFC3339)
	runID := uuid.NewString()

	block := fmt.Sprintf("\n%s\nGENERATED_AT: %s\nRUN_ID: %s\nHASH: %s\n%s\n",
		TagStart, now, runID, hash, TagEnd)

	return clean + block
}

// Verify checks that a document matches the hash recorded in its metadata block.
func Verify(document string) (bool, error) {
	meta, clean := Extract(document)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}
