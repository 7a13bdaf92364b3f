package driven

import (
	"context"
	"time"
)

// ExportState records the last successful export of one page, used to
// skip pages whose content has not changed since.
type ExportState struct {
	// PageID is the page identifier.
	PageID string

	// LastEdited is the page's last_edited_time at export.
	LastEdited time.Time

	// Path is the file the export was written to.
	Path string

	// ExportedAt is when the export ran.
	ExportedAt time.Time
}

// StateStore persists per-page export state between runs.
type StateStore interface {
	// Get returns the recorded state for a page, or domain.ErrNotFound.
	Get(ctx context.Context, pageID string) (*ExportState, error)

	// Save upserts the state for a page.
	Save(ctx context.Context, state ExportState) error

	// Delete removes the state for a page. Deleting unknown pages is
	// not an error.
	Delete(ctx context.Context, pageID string) error

	// Close releases the underlying resources.
	Close() error
}
