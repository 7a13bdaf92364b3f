package driven

import (
	"context"

	"github.com/notemill/notemill/internal/core/domain"
)

// PageSource fetches blog pages and their content blocks from a remote
// content API. Implementations handle authentication, pagination, and
// rate limiting internally: callers always receive fully merged
// sequences with no cursor state exposed.
type PageSource interface {
	// Validate checks the source is configured and authenticated by
	// making a lightweight API call.
	Validate(ctx context.Context) error

	// Pages returns every page of the configured data source, merged
	// across pagination boundaries, in API order.
	Pages(ctx context.Context) ([]domain.Page, error)

	// Blocks returns the top-level content blocks of one page, merged
	// across pagination boundaries, in source order. Nested children
	// are not resolved.
	Blocks(ctx context.Context, pageID string) ([]domain.Block, error)
}
