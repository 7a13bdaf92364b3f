package cli

import (
	"github.com/spf13/cobra"

	"github.com/notemill/notemill/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "notemill",
	Short: "Export Notion pages to Markdown and MDX",
	Long: `notemill converts the published pages of a Notion data source into
Markdown or MDX files with YAML frontmatter, ready for a static site.

Authentication uses a Notion internal integration token. Run
'notemill auth login' once, then 'notemill export' to convert pages.

Examples:
  # Store the integration token
  notemill auth login

  # Export all published pages as MDX
  notemill export --data-source <id> --output content/posts

  # Export as plain Markdown, rewriting unchanged pages too
  notemill export --format md --force`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
