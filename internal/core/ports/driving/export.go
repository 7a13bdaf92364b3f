package driving

import "context"

// Format selects the output dialect of an export run.
type Format string

const (
	// FormatMarkdown writes plain Markdown with a .md extension.
	FormatMarkdown Format = "md"

	// FormatMDX writes the MDX markup dialect with a .mdx extension.
	FormatMDX Format = "mdx"
)

// Valid reports whether the format is one of the supported dialects.
func (f Format) Valid() bool {
	return f == FormatMarkdown || f == FormatMDX
}

// Extension returns the file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// ExportOptions configure one export run.
type ExportOptions struct {
	// OutputDir is the directory files are written to.
	OutputDir string

	// Format selects the output dialect. Defaults to FormatMDX.
	Format Format

	// Force re-exports pages even when their recorded state says the
	// content is unchanged.
	Force bool
}

// PageResult reports the outcome of converting one page.
type PageResult struct {
	// PageID is the page identifier.
	PageID string

	// Title is the page title.
	Title string

	// Path is the written file, empty when the page failed or was
	// skipped.
	Path string

	// Skipped is true when the page was up to date and not rewritten.
	Skipped bool

	// Err is the conversion failure, if any. One page's failure never
	// aborts the batch.
	Err error
}

// ExportSummary aggregates an export run.
type ExportSummary struct {
	// Total is the number of published pages considered.
	Total int

	// Results holds one entry per page in processing order.
	Results []PageResult
}

// Written returns the paths of files written during the run.
func (s *ExportSummary) Written() []string {
	var paths []string
	for _, r := range s.Results {
		if r.Err == nil && !r.Skipped && r.Path != "" {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// Failed returns the number of pages that failed to convert.
func (s *ExportSummary) Failed() int {
	failed := 0
	for _, r := range s.Results {
		if r.Err != nil {
			failed++
		}
	}
	return failed
}

// Skipped returns the number of pages skipped as up to date.
func (s *ExportSummary) Skipped() int {
	skipped := 0
	for _, r := range s.Results {
		if r.Skipped {
			skipped++
		}
	}
	return skipped
}

// Exporter converts the published pages of a data source to files.
type Exporter interface {
	// Export runs one batch conversion. It returns an error only for
	// run-level failures (listing pages, creating the output
	// directory); per-page failures are reported in the summary.
	Export(ctx context.Context, opts ExportOptions) (*ExportSummary, error)
}
