package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/notemill/notemill/internal/core/domain"
	"github.com/notemill/notemill/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 3

	// RetryDelay is the initial delay between retries.
	RetryDelay = time.Second
)

// Client is a minimal Notion API client covering the two endpoints the
// exporter needs: data source queries and block children retrieval.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *RateLimiter
}

// NewClient creates a Notion API client with a static integration token.
// The token rides on an oauth2 static token source so the transport owns
// the Authorization header.
func NewClient(ctx context.Context, token, baseURL string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient:  tc,
		baseURL:     baseURL,
		rateLimiter: NewRateLimiter(),
	}
}

// RateLimiter returns the rate limiter for external inspection.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// do performs one API call with rate limiting and bounded retries for
// transient failures (429 and 5xx). The decoded response lands in out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = encoded
	}

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			delay := RetryDelay * time.Duration(attempt)
			logger.Debug("retrying %s %s in %s (attempt %d)", method, path, delay, attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		retryable, err := c.doOnce(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}

	return lastErr
}

// doOnce performs a single HTTP round trip. The bool reports whether the
// failure is transient and worth retrying.
func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, out any) (bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Notion-Version", APIVersion)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return true, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode >= 500, decodeAPIError(resp)
	}

	if out == nil {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

// decodeAPIError maps a non-2xx response to an *APIError, tolerating
// bodies that are not the standard error envelope.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); err == nil {
		if json.Unmarshal(body, &envelope) == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
	}

	return apiErr
}

// QueryDataSource fetches one page of a data source query.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID, cursor string) (*domain.PageList, error) {
	body := map[string]any{}
	if cursor != "" {
		body["start_cursor"] = cursor
	}

	var list domain.PageList
	path := fmt.Sprintf("/v1/data_sources/%s/query", dataSourceID)
	if err := c.do(ctx, http.MethodPost, path, body, &list); err != nil {
		return nil, fmt.Errorf("query data source: %w", err)
	}
	return &list, nil
}

// GetBlockChildren fetches one page of a block's children.
func (c *Client) GetBlockChildren(ctx context.Context, blockID, cursor string) (*domain.BlockList, error) {
	path := fmt.Sprintf("/v1/blocks/%s/children", blockID)
	if cursor != "" {
		path += "?start_cursor=" + url.QueryEscape(cursor)
	}

	var list domain.BlockList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("get block children: %w", err)
	}
	return &list, nil
}

// FetchAllPages fetches every page of a data source, following cursors
// until exhaustion and merging result pages in order.
func (c *Client) FetchAllPages(ctx context.Context, dataSourceID string) ([]domain.Page, error) {
	var all []domain.Page
	cursor := ""

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		list, err := c.QueryDataSource(ctx, dataSourceID, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, list.Results...)

		if !list.HasMore {
			return all, nil
		}
		cursor = list.NextCursor
	}
}

// FetchAllBlocks fetches a page's top-level blocks, following cursors
// until exhaustion and merging result pages in source order. Child
// blocks are not descended into.
func (c *Client) FetchAllBlocks(ctx context.Context, pageID string) ([]domain.Block, error) {
	var all []domain.Block
	cursor := ""

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		list, err := c.GetBlockChildren(ctx, pageID, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, list.Results...)

		if !list.HasMore {
			return all, nil
		}
		cursor = list.NextCursor
	}
}
