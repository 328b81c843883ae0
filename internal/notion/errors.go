package notion

import "errors"

var (
	// ErrUnavailable indicates the Notion API could not be reached.
	ErrUnavailable = errors.New("notion api unreachable")

	// ErrTimeout indicates a query exceeded the configured timeout.
	ErrTimeout = errors.New("notion request timed out")

	// ErrUnauthorized indicates the integration token was rejected.
	ErrUnauthorized = errors.New("notion token rejected")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("notion retry attempts exhausted")
)
