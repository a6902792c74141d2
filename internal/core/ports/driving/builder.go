package driving

import (
	"context"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

// IndexBuilder assembles the full search catalog and writes the artifact,
// overwriting any prior one. Rebuilds are idempotent and deterministic
// for identical inputs, except for the last-built timestamp.
type IndexBuilder interface {
	Build(ctx context.Context) (domain.BuildStats, error)
}
