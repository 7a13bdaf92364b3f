package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreviewFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "post.mdx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPreviewCmd_Use(t *testing.T) {
	assert.Equal(t, "preview <file>", previewCmd.Use)
}

func TestPreviewCmd_RendersHTML(t *testing.T) {
	defer rootCmd.SetArgs(nil)

	path := writePreviewFile(t, `---
title: Hello World
status: Publish
---

Some **bold** text.

<Callout icon="💡" color="default">
  a note
</Callout>
`)

	out, err := execute("preview", path)
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Hello World</h1>")
	assert.Contains(t, out, "<strong>bold</strong>")
	// MDX component tags pass through unescaped.
	assert.Contains(t, out, `<Callout icon="💡" color="default">`)
}

func TestPreviewCmd_MissingFile(t *testing.T) {
	defer rootCmd.SetArgs(nil)

	_, err := execute("preview", filepath.Join(t.TempDir(), "absent.mdx"))
	assert.Error(t, err)
}
