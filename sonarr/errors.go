package sonarr

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the Sonarr client.
var (
	// ErrInvalidConfig indicates invalid client configuration.
	ErrInvalidConfig = errors.New("invalid sonarr configuration")

	// ErrEmptyStatus indicates the server answered system/status with an
	// empty payload.
	ErrEmptyStatus = errors.New("sonarr returned an empty status response")
)

// Error is the single error kind produced by the client. Every failure mode
// (connection failure, non-success HTTP status, malformed JSON, empty status
// payload) is reported through it; callers decide policy themselves.
type Error struct {
	StatusCode int
	Message    string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("sonarr API error: status %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("sonarr: %s: %v", e.Message, e.Err)
	default:
		return "sonarr: " + e.Message
	}
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
