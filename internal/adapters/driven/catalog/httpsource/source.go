// Package httpsource fetches the catalog artifact over HTTP from the
// published site, the same way the site's own search box loads it.
package httpsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
	"github.com/vgutierrezmarcos/oposearch/internal/core/ports/driven"
)

var _ driven.CatalogSource = (*Source)(nil)

const (
	artifactName   = "search-index.json"
	defaultTimeout = 15 * time.Second

	// maxArtifactSize bounds the response body read; the real artifact
	// is well under a megabyte.
	maxArtifactSize = 16 << 20
)

// Source fetches the catalog from <baseURL>/search-index.json.
type Source struct {
	url    string
	client *http.Client
}

// New creates a source for the site at baseURL.
func New(baseURL string) *Source {
	return &Source{
		url:    strings.TrimRight(baseURL, "/") + "/" + artifactName,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// URL returns the artifact URL the source fetches.
func (s *Source) URL() string {
	return s.url
}

// Fetch downloads and decodes the artifact.
func (s *Source) Fetch(ctx context.Context) (*domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", domain.ErrCatalogUnavailable, s.url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtifactSize))
	if err != nil {
		return nil, fmt.Errorf("reading catalog response: %w", err)
	}
	var catalog domain.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog from %s: %w", s.url, err)
	}
	return &catalog, nil
}
