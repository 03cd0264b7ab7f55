package pf

import (
	"errors"
	"fmt"
)

// Sentinel errors for failures detected before or outside the HTTP exchange.
var (
	// ErrInvalidCredentials indicates empty or unusable auth material. It is
	// raised locally, before any network call is made.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidLogin indicates the attendance collection returned no usable
	// reference for the requested date.
	ErrInvalidLogin = errors.New("invalid login")

	// ErrInvalidURL indicates a malformed base URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidResponse indicates a successful status with no usable body
	// where a JSON document is required.
	ErrInvalidResponse = errors.New("invalid response")
)

// StatusError reports an HTTP status outside the 2xx range. The raw body is
// retained for diagnostics.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

// DecodeError wraps a response body that did not match the expected JSON
// shape. The cause chain is preserved for errors.Is/errors.As.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
