package driven

import (
	"context"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

// CatalogSource fetches and decodes the catalog artifact. A fetch is
// all-or-nothing: any I/O or parse error returns a nil catalog.
type CatalogSource interface {
	Fetch(ctx context.Context) (*domain.Catalog, error)
}

// CatalogWriter persists a freshly built catalog, atomically replacing
// any previous artifact.
type CatalogWriter interface {
	Write(ctx context.Context, catalog *domain.Catalog) error
}
