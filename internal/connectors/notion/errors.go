package notion

import (
	"errors"
	"fmt"
	"time"
)

// Notion-specific errors.
var (
	// ErrTokenRequired indicates no integration token was supplied.
	ErrTokenRequired = errors.New("notion: integration token required")

	// ErrDataSourceRequired indicates no data source ID was supplied.
	ErrDataSourceRequired = errors.New("notion: data source id required")

	// ErrInvalidID indicates the supplied page or data source ID is not
	// a UUID in any accepted form.
	ErrInvalidID = errors.New("notion: invalid id")
)

// APIError represents a Notion API error response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: API error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// RateLimitError represents a rate limit exceeded error with the
// retry-after deadline the API announced.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("notion: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
