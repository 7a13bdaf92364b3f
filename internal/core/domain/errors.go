package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrFieldRequired indicates a required field is absent from an
	// API payload.
	ErrFieldRequired = errors.New("required field missing")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthRequired indicates no integration token is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the integration token was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrDataSourceRequired indicates no data source ID is configured.
	ErrDataSourceRequired = errors.New("data source id required")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// ParseError reports an API payload that does not match the expected
// shape for a known block variant. Path names the offending field, e.g.
// "results[3].paragraph". Unrecognised discriminators never produce a
// ParseError; they degrade to the unsupported variant instead.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse block: %v", e.Err)
	}
	return fmt.Sprintf("parse block: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks whether err is a block parse failure, returning
// the typed error when it is.
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
