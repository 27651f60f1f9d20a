package coingecko

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid coingecko configuration")
	// ErrMissingData indicates a response without the expected data envelope
	ErrMissingData = errors.New("response has no data field")
)

// NetworkError is returned when the request could not be completed or the
// server answered with a non-2xx status and a body that is not JSON.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("coingecko request failed: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("coingecko request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError represents a CoinGecko API error.
//
// Body holds the decoded error payload. For a success response that could not
// be decoded, Body is nil and Raw holds the bytes that were received.
type APIError struct {
	StatusCode int
	Body       any
	Raw        []byte
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("coingecko API error: status %d: %s", e.StatusCode, e.Message())
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Message extracts a human readable message from the error payload.
// CoinGecko uses both {"error": "..."} and
// {"status": {"error_code": 429, "error_message": "..."}} shapes.
func (e *APIError) Message() string {
	if body, ok := e.Body.(map[string]any); ok {
		if msg, ok := body["error"].(string); ok {
			return msg
		}
		if status, ok := body["status"].(map[string]any); ok {
			if msg, ok := status["error_message"].(string); ok {
				return msg
			}
		}
		if msg, ok := body["message"].(string); ok {
			return msg
		}
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	if e.Body != nil {
		if b, err := json.Marshal(e.Body); err == nil {
			return string(b)
		}
	}

	return strings.TrimSpace(string(e.Raw))
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates the request quota was exceeded
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// retryableStatusError signals the backoff loop that the response status is
// in the retry set.
type retryableStatusError struct {
	StatusCode int
}

func (e *retryableStatusError) Error() string {
	return fmt.Sprintf("retryable status %d", e.StatusCode)
}
