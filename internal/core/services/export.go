package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/notemill/notemill/internal/core/domain"
	"github.com/notemill/notemill/internal/core/ports/driven"
	"github.com/notemill/notemill/internal/core/ports/driving"
	"github.com/notemill/notemill/internal/logger"
	"github.com/notemill/notemill/internal/render"
)

// StatusPublished is the Status select value marking a page for export.
const StatusPublished = "Publish"

// Ensure ExportService implements the interface.
var _ driving.Exporter = (*ExportService)(nil)

// ExportService converts published pages to Markdown or MDX files.
type ExportService struct {
	source driven.PageSource
	states driven.StateStore
}

// NewExportService creates an export service. The state store is
// optional: when nil every page is re-exported on every run.
func NewExportService(source driven.PageSource, states driven.StateStore) *ExportService {
	return &ExportService{
		source: source,
		states: states,
	}
}

// Export runs one batch conversion of all published pages.
func (s *ExportService) Export(ctx context.Context, opts driving.ExportOptions) (*driving.ExportSummary, error) {
	// 1. Resolve options.
	if opts.Format == "" {
		opts.Format = driving.FormatMDX
	}
	if !opts.Format.Valid() {
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, opts.Format)
	}
	if opts.OutputDir == "" {
		return nil, fmt.Errorf("%w: output directory required", domain.ErrInvalidInput)
	}

	// 2. List pages and keep the published ones.
	pages, err := s.source.Pages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	published := make([]domain.Page, 0, len(pages))
	for _, page := range pages {
		if page.Status() == StatusPublished {
			published = append(published, page)
		}
	}
	logger.Info("Found %d pages, %d published", len(pages), len(published))

	// 3. Prepare the output directory.
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// 4. Convert each page. One page's failure never aborts the batch.
	summary := &driving.ExportSummary{Total: len(published)}
	for i := range published {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Results = append(summary.Results, s.exportPage(ctx, &published[i], opts))
	}

	logger.Info("Export complete: %d written, %d skipped, %d failed",
		len(summary.Written()), summary.Skipped(), summary.Failed())
	return summary, nil
}

// exportPage converts one page and records its state.
func (s *ExportService) exportPage(ctx context.Context, page *domain.Page, opts driving.ExportOptions) driving.PageResult {
	result := driving.PageResult{
		PageID: page.PageID(),
		Title:  page.Title(),
	}

	path := filepath.Join(opts.OutputDir, fileName(page)+opts.Format.Extension())

	// Skip pages whose content is unchanged since the last run.
	if !opts.Force && s.upToDate(ctx, page, path) {
		logger.Debug("Skipping %q: unchanged since last export", result.Title)
		result.Path = path
		result.Skipped = true
		return result
	}

	blocks, err := s.source.Blocks(ctx, page.PageID())
	if err != nil {
		result.Err = fmt.Errorf("fetch blocks: %w", err)
		return result
	}

	var body string
	switch opts.Format {
	case driving.FormatMarkdown:
		body = render.Markdown(blocks)
	default:
		body = render.MDX(blocks)
	}

	fm, err := renderFrontmatter(page)
	if err != nil {
		result.Err = err
		return result
	}

	if err := os.WriteFile(path, []byte(fm+body), 0o644); err != nil {
		result.Err = fmt.Errorf("write file: %w", err)
		return result
	}
	result.Path = path
	logger.Info("Wrote %q to %s", result.Title, path)

	if s.states != nil {
		state := driven.ExportState{
			PageID:     page.PageID(),
			LastEdited: page.LastEditedTime,
			Path:       path,
			ExportedAt: time.Now(),
		}
		if err := s.states.Save(ctx, state); err != nil {
			logger.Error("Failed to record export state for %q: %v", result.Title, err)
		}
	}
	return result
}

// upToDate reports whether the recorded state matches the page's
// last_edited_time and the file is still on disk.
func (s *ExportService) upToDate(ctx context.Context, page *domain.Page, path string) bool {
	if s.states == nil {
		return false
	}
	state, err := s.states.Get(ctx, page.PageID())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Debug("State lookup failed for %s: %v", page.PageID(), err)
		}
		return false
	}
	if !state.LastEdited.Equal(page.LastEditedTime) || state.Path != path {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return true
}

// fileName picks the base name of an exported page: the Slug property
// when set, otherwise the slugified title, otherwise the page ID.
func fileName(page *domain.Page) string {
	if s := strings.TrimSpace(page.Slug()); s != "" {
		return s
	}
	if normalised, err := slug.Normalize(page.Title()); err == nil && normalised != "" {
		return normalised
	}
	return page.PageID()
}
