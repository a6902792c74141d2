package driven

import (
	"context"

	"github.com/vgutierrezmarcos/oposearch/internal/core/domain"
)

// ContentSource yields the front-matter documents found in the content
// root. Documents with unreadable front matter are skipped by the source;
// field-level validation is the builder's concern.
type ContentSource interface {
	Documents(ctx context.Context) ([]domain.ContentDocument, error)
}
