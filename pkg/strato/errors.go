package strato

import (
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	// ErrConfigRequired is returned by client constructors when the config
	// is nil.
	ErrConfigRequired = errors.New("config is required")

	// ErrMissingIdentifier is returned before any network call when an
	// operation requires a resource identifier and got the zero value.
	ErrMissingIdentifier = errors.New("resource identifier is required")

	// ErrPollTimeout is returned when a bounded poll exhausts its attempt
	// budget without a satisfying result.
	ErrPollTimeout = errors.New("poll attempts exhausted")

	// ErrEndpointRequired is returned by client constructors when no API
	// endpoint is configured.
	ErrEndpointRequired = errors.New("API endpoint is required")

	// ErrTokenRequired is returned by client constructors when no API token
	// is configured.
	ErrTokenRequired = errors.New("API token is required")
)

// Common API error codes.
const (
	ErrorCodeNotFound        = "not_found"
	ErrorCodeInvalidInput    = "invalid_input"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeRateLimit       = "rate_limit_exceeded"
	ErrorCodeLocked          = "locked"
	ErrorCodeUniquenessError = "uniqueness_error"
	ErrorCodeServiceError    = "service_error"
)

// APIError represents an error returned by the Strato API. The wire format
// wraps it under a top-level "error" key.
type APIError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Status  int    `json:"-"       yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// EnvelopeError reports a response envelope that is valid JSON but does not
// contain the expected top-level key. It always indicates a client-side or
// server-side protocol violation, never a legitimately empty result, and it
// carries the raw envelope for diagnostics.
type EnvelopeError struct {
	Key      string
	Envelope []byte
}

// Error implements the error interface.
func (e *EnvelopeError) Error() string {
	return fmt.Sprintf("response envelope is missing key %q: %s", e.Key, e.Envelope)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeNotFound
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeUnauthorized
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeRateLimit
}
