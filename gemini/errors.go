package gemini

import (
	"encoding/json"
	"net/http"

	"github.com/petal-labs/facet/core"
)

// normalizeError converts an HTTP error response to an APIError with the
// appropriate sentinel. The response body text is preserved in the message
// for diagnostics.
func normalizeError(status int, body []byte) error {
	// Parse error response if possible
	var errResp geminiErrorResponse
	_ = json.Unmarshal(body, &errResp)

	message := errResp.Error.Message
	if message == "" {
		message = string(body)
	}
	if message == "" {
		message = http.StatusText(status)
	}

	code := errResp.Error.Status
	if code == "" {
		code = "unknown_error"
	}

	return &core.APIError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     sentinelForStatus(status),
	}
}

// sentinelForStatus maps an HTTP status code to a core sentinel error.
func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest || status == http.StatusNotFound:
		return core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusRequestEntityTooLarge:
		return core.ErrPayloadTooLarge
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	case status == http.StatusGatewayTimeout:
		return core.ErrTimeout
	default:
		return core.ErrServer
	}
}

// newNetworkError creates an APIError for network-level failures.
func newNetworkError(err error) error {
	return &core.APIError{
		Code:    "network_error",
		Message: err.Error(),
		Err:     core.ErrNetwork,
	}
}

// newTimeoutError creates an APIError for a client-side attempt expiry.
func newTimeoutError() error {
	return &core.APIError{
		Code:    "attempt_timeout",
		Message: "attempt timed out",
		Err:     core.ErrTimeout,
	}
}

// newDecodeError creates an APIError for JSON decode failures.
func newDecodeError(err error) error {
	return &core.APIError{
		Code:    "decode_error",
		Message: err.Error(),
		Err:     core.ErrDecode,
	}
}
