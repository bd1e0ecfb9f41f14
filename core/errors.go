package core

import (
	"errors"
	"fmt"
)

// APIError represents an error returned by the generation API with full context.
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gemini: %s (status=%d, code=%s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("gemini: %s (code=%s)", e.Message, e.Code)
}

// Unwrap returns the underlying error for error chaining.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrRateLimited     = errors.New("rate limited")
	ErrBadRequest      = errors.New("bad request")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrTimeout         = errors.New("timeout")
	ErrServer          = errors.New("server error")
	ErrNetwork         = errors.New("network error")
	ErrDecode          = errors.New("decode error")
)

// Validation errors with actionable guidance.
var (
	ErrImageRequired  = errors.New("reference image required: supply a photo before generating")
	ErrPromptRequired = errors.New("prompt required: describe the variation you want, e.g. \"golden armor\"")
)
