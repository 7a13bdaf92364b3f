package notion

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the Notion API root.
	DefaultBaseURL = "https://api.notion.com"

	// APIVersion is the Notion-Version header value the connector
	// pins. Payload shapes in the domain package match this version.
	APIVersion = "2025-09-03"
)

// Config holds the connector configuration.
type Config struct {
	// Token is the integration token used as the bearer credential.
	Token string

	// DataSourceID identifies the blog data source to query.
	DataSourceID string

	// BaseURL overrides the API root. Tests point it at a local server.
	BaseURL string
}

// Validate checks required fields and normalises the data source ID.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrTokenRequired
	}
	if strings.TrimSpace(c.DataSourceID) == "" {
		return ErrDataSourceRequired
	}

	id, err := NormalizeID(c.DataSourceID)
	if err != nil {
		return err
	}
	c.DataSourceID = id

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}

// NormalizeID canonicalises a Notion identifier to dashed UUID form.
// Notion URLs embed the un-dashed 32-hex form; the API accepts both but
// the connector always sends the dashed form.
func NormalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}
