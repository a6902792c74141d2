package driving

import (
	"context"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

// Searcher is the public surface of the search engine consumed by the
// presentation layer. Consumers must not depend on scoring internals.
type Searcher interface {
	// Initialize loads the catalog artifact once. Idempotent: calling it
	// again while ready is a no-op returning true. Returns false and
	// leaves the engine failed on any fetch or parse error; a caller may
	// retry, which performs a full reload.
	Initialize(ctx context.Context) bool

	// Search returns a ranked, deduplicated, capped sequence of results.
	// It returns an empty slice when the engine is not ready or the query
	// is too short; it never panics, whatever the input.
	Search(query string) []domain.ScoredResult

	// Suggest is the type-ahead variant: a search truncated to limit.
	Suggest(query string, limit int) []domain.ScoredResult

	// Highlight wraps each query term found in text, case- and
	// accent-insensitively, in a <mark> element.
	Highlight(text, query string) string
}
