package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notemill/notemill/internal/core/ports/driving"
)

// writeGitHubOutput publishes the written file list for downstream
// workflow steps using the GITHUB_OUTPUT file protocol. Outside GitHub
// Actions the variable is unset and nothing happens.
func writeGitHubOutput(summary *driving.ExportSummary) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	files := summary.Written()
	if files == nil {
		files = []string{}
	}
	encoded, err := json.Marshal(files)
	if err != nil {
		return fmt.Errorf("encode file list: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "files=%s\nfile_count=%d\n", encoded, len(files)); err != nil {
		return err
	}
	return nil
}
