package services

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/notemill/notemill/internal/core/domain"
)

// frontmatter is the YAML document written ahead of each exported page.
// Field order matters: readers diff exported files, so the emitted keys
// must be stable across runs.
type frontmatter struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Type        string   `yaml:"type,omitempty"`
	Status      string   `yaml:"status"`
	Tags        []string `yaml:"tags,omitempty"`
	LastEdited  string   `yaml:"last_edited"`
}

// renderFrontmatter serialises the page metadata between "---" fences.
func renderFrontmatter(page *domain.Page) (string, error) {
	fm := frontmatter{
		Title:       page.Title(),
		Slug:        page.Slug(),
		Description: page.Description(),
		Type:        page.TypeName(),
		Status:      page.Status(),
		Tags:        page.Tags(),
		LastEdited:  page.LastEditedTime.UTC().Format(time.RFC3339),
	}

	encoded, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(encoded)
	b.WriteString("---\n\n")
	return b.String(), nil
}
