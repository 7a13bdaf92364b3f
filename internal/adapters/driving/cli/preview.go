package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/adrg/frontmatter"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render an exported file as HTML",
	Long: `Renders the Markdown body of an exported file to HTML on stdout,
for a quick check of the conversion without a site build. MDX component
tags pass through as raw HTML.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var meta struct {
		Title string `yaml:"title"`
	}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return fmt.Errorf("parse frontmatter: %w", err)
	}

	// WithUnsafe keeps the MDX component tags in the output.
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var out bytes.Buffer
	if meta.Title != "" {
		fmt.Fprintf(&out, "<h1>%s</h1>\n", meta.Title)
	}
	if err := md.Convert(body, &out); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	cmd.Print(out.String())
	return nil
}
