package notion

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/notemill/notemill/internal/core/domain"
	"github.com/notemill/notemill/internal/core/ports/driven"
	"github.com/notemill/notemill/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.PageSource = (*Connector)(nil)

// Connector fetches blog pages and blocks from a Notion data source.
type Connector struct {
	config *Config
	client *Client
}

// New creates a Notion connector. The config must already be validated.
func New(ctx context.Context, cfg *Config) (*Connector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Connector{
		config: cfg,
		client: NewClient(ctx, cfg.Token, cfg.BaseURL),
	}, nil
}

// Validate checks the token by fetching the bot user behind it.
func (c *Connector) Validate(ctx context.Context) error {
	return checkAuth(ctx, c.client)
}

// ValidateToken checks a bare token without a configured data source.
// The auth command uses it before persisting a token.
func ValidateToken(ctx context.Context, token, baseURL string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return checkAuth(ctx, NewClient(ctx, token, baseURL))
}

func checkAuth(ctx context.Context, client *Client) error {
	if err := client.do(ctx, http.MethodGet, "/v1/users/me", nil, nil); err != nil {
		if IsUnauthorized(err) {
			return domain.ErrAuthInvalid
		}
		return fmt.Errorf("%w: %w", domain.ErrAuthRequired, err)
	}
	return nil
}

// Pages returns every page of the configured data source, merged across
// pagination boundaries.
func (c *Connector) Pages(ctx context.Context) ([]domain.Page, error) {
	pages, err := c.client.FetchAllPages(ctx, c.config.DataSourceID)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched %d pages from data source %s", len(pages), c.config.DataSourceID)
	return pages, nil
}

// Blocks returns one page's top-level blocks, merged across pagination
// boundaries. The page ID may be in dashed or un-dashed form.
func (c *Connector) Blocks(ctx context.Context, pageID string) ([]domain.Block, error) {
	id, err := NormalizeID(pageID)
	if err != nil {
		return nil, err
	}

	blocks, err := c.client.FetchAllBlocks(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Debug("fetched %d blocks for page %s", len(blocks), id)
	return blocks, nil
}
