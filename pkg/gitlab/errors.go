package gitlab

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrBaseURLRequired      = errors.New("base URL is required")
	ErrConfigRequired       = errors.New("config is required")
	ErrInvalidProxyURL      = errors.New("invalid proxy URL")
	ErrNoCredentials        = errors.New("no token or username/password configured")
	ErrNoMoreItems          = errors.New("no more items")
	ErrEmptySearchTerm      = errors.New("search term is empty")
	ErrCacheDisabled        = errors.New("cache disabled")
	ErrCacheKeyNotFound     = errors.New("key not found")
	ErrCacheEntryExpired    = errors.New("cache entry expired")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
)

// HTTPError represents a non-2xx response from the API. The raw body is
// preserved so callers can extract upstream error messages; the status code
// is passed through uninterpreted.
type HTTPError struct {
	StatusCode int
	Body       []byte
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gitlab: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}

	return fmt.Sprintf("gitlab: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NewHTTPError builds an HTTPError from a status code and raw body,
// extracting the upstream message when the body carries one.
func NewHTTPError(statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Body:       body,
		Message:    extractMessage(body),
	}
}

// errorBody is the shape of GitLab error payloads. Either field may be set;
// "message" can also be a structured object, which is kept verbatim.
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

func extractMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}

	if len(parsed.Message) > 0 {
		var msg string
		if err := json.Unmarshal(parsed.Message, &msg); err == nil {
			return msg
		}

		return string(parsed.Message)
	}

	return parsed.Error
}

// DecodeError reports a response body that could not be decoded into the
// requested shape. It is distinct from transport and status failures: a 200
// response with an unparseable body indicates a protocol or version
// mismatch rather than a request problem.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, statusCode int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}

	return false
}
