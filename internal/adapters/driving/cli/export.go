package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notemill/notemill/internal/adapters/driven/config/file"
	"github.com/notemill/notemill/internal/adapters/driven/storage/sqlite"
	"github.com/notemill/notemill/internal/connectors/notion"
	"github.com/notemill/notemill/internal/core/ports/driven"
	"github.com/notemill/notemill/internal/core/ports/driving"
	"github.com/notemill/notemill/internal/core/services"
	"github.com/notemill/notemill/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export published pages to files",
	Long: `Converts every published page of the configured Notion data source
into one file per page, with YAML frontmatter built from the page
properties. Pages whose content is unchanged since the last run are
skipped unless --force is given.

The token is read from NOTION_API_KEY or the config store; the data
source from --data-source, BLOG_DATASOURCE_ID, or the config store.

When GITHUB_OUTPUT is set, the written file list is published as the
'files' and 'file_count' step outputs.`,
	RunE: runExport,
}

// Flags for export.
var (
	exportFormat     string
	exportOutput     string
	exportDataSource string
	exportForce      bool
	exportNoState    bool
)

func init() {
	exportCmd.Flags().StringVarP(
		&exportFormat, "format", "f", "", `Output format: "md" or "mdx" (default "mdx")`)
	exportCmd.Flags().StringVarP(
		&exportOutput, "output", "o", "", `Output directory (default "output")`)
	exportCmd.Flags().StringVar(
		&exportDataSource, "data-source", "", "Notion data source ID")
	exportCmd.Flags().BoolVar(
		&exportForce, "force", false, "Re-export pages even when unchanged")
	exportCmd.Flags().BoolVar(
		&exportNoState, "no-state", false, "Disable the incremental export state store")

	rootCmd.AddCommand(exportCmd)
}

// openConfigStore and newExporter are package variables so tests can
// substitute fakes.
var openConfigStore = func() (driven.ConfigStore, error) {
	return file.NewConfigStore("")
}

var newExporter = func(ctx context.Context, token, dataSourceID string, noState bool) (driving.Exporter, func(), error) {
	source, err := notion.New(ctx, &notion.Config{Token: token, DataSourceID: dataSourceID})
	if err != nil {
		return nil, nil, err
	}

	var states driven.StateStore
	cleanup := func() {}
	if !noState {
		store, err := sqlite.NewStateStore("")
		if err != nil {
			return nil, nil, fmt.Errorf("open state store: %w", err)
		}
		states = store
		cleanup = func() { _ = store.Close() }
	}

	return services.NewExportService(source, states), cleanup, nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := openConfigStore()
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	token := os.Getenv("NOTION_API_KEY")
	if token == "" {
		token = cfg.GetString(driven.ConfigKeyToken)
	}
	if token == "" {
		return errors.New("no Notion token configured: set NOTION_API_KEY or run 'notemill auth login'")
	}

	dataSource := exportDataSource
	if dataSource == "" {
		dataSource = os.Getenv("BLOG_DATASOURCE_ID")
	}
	if dataSource == "" {
		dataSource = cfg.GetString(driven.ConfigKeyDataSourceID)
	}
	if dataSource == "" {
		return errors.New("no data source configured: pass --data-source or set BLOG_DATASOURCE_ID")
	}

	output := exportOutput
	if output == "" {
		output = os.Getenv("OUTPUT_DIR")
	}
	if output == "" {
		output = cfg.GetString(driven.ConfigKeyOutputDir)
	}
	if output == "" {
		output = "output"
	}

	format := exportFormat
	if format == "" {
		format = cfg.GetString(driven.ConfigKeyFormat)
	}
	if format == "" {
		format = string(driving.FormatMDX)
	}
	f := driving.Format(format)
	if !f.Valid() {
		return fmt.Errorf("unknown format %q: use \"md\" or \"mdx\"", format)
	}

	exporter, cleanup, err := newExporter(ctx, token, dataSource, exportNoState)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := exporter.Export(ctx, driving.ExportOptions{
		OutputDir: output,
		Format:    f,
		Force:     exportForce,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printSummary(cmd, summary)

	if err := writeGitHubOutput(summary); err != nil {
		logger.Warn("Failed to write GITHUB_OUTPUT: %v", err)
	}

	if failed := summary.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, summary.Total)
	}
	return nil
}

// printSummary renders the per-page outcomes and totals.
func printSummary(cmd *cobra.Command, summary *driving.ExportSummary) {
	cmd.Println(titleStyle.Render(fmt.Sprintf("Exported %d published pages", summary.Total)))

	for _, r := range summary.Results {
		switch {
		case r.Err != nil:
			cmd.Printf("  %s %s: %v\n", errorStyle.Render("✗"), r.Title, r.Err)
		case r.Skipped:
			cmd.Printf("  %s %s %s\n", mutedStyle.Render("•"), r.Title, mutedStyle.Render("(unchanged)"))
		default:
			cmd.Printf("  %s %s → %s\n", successStyle.Render("✓"), r.Title, r.Path)
		}
	}

	written := len(summary.Written())
	line := fmt.Sprintf("%d written, %d skipped, %d failed", written, summary.Skipped(), summary.Failed())
	if summary.Failed() > 0 {
		cmd.Println(warnStyle.Render(line))
	} else {
		cmd.Println(line)
	}
}
