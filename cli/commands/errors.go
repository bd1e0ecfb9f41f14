package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petal-labs/facet/core"
)

// timePrecision rounds durations in user-facing output.
const timePrecision = 10 * time.Millisecond

// Exit codes returned by the binary.
const (
	ExitSuccess    = 0
	ExitValidation = 1
	ExitProvider   = 2
	ExitNetwork    = 3
)

// exitError pairs a user-facing message with a process exit code.
type exitError struct {
	msg  string
	code int
}

func (e *exitError) Error() string { return e.msg }

// ExitCode satisfies the ExitCoder check in main.
func (e *exitError) ExitCode() int { return e.code }

// exitWithCode wraps err into an exitError carrying a friendly message.
func exitWithCode(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{msg: friendlyMessage(err), code: exitCodeFor(err)}
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, core.ErrNetwork), errors.Is(err, core.ErrTimeout):
		return ExitNetwork
	case errors.Is(err, core.ErrImageRequired),
		errors.Is(err, core.ErrPromptRequired),
		errors.Is(err, errNoAPIKey),
		errors.Is(err, context.Canceled):
		return ExitValidation
	case errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, core.ErrRateLimited),
		errors.Is(err, core.ErrPayloadTooLarge),
		errors.Is(err, core.ErrBadRequest),
		errors.Is(err, core.ErrServer),
		errors.Is(err, core.ErrDecode):
		return ExitProvider
	default:
		return ExitValidation
	}
}

// friendlyMessage translates provider errors into actionable guidance.
func friendlyMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrTimeout):
		return "the request timed out; try a smaller image or fewer variations"
	case errors.Is(err, core.ErrRateLimited):
		return "the service is rate limiting requests; wait a moment and try again"
	case errors.Is(err, core.ErrPayloadTooLarge):
		return "the image is too large for the service; resize it and try again"
	case errors.Is(err, core.ErrUnauthorized):
		return "the API key was rejected; check it or run 'facet keys set'"
	case errors.Is(err, core.ErrNetwork):
		return "could not reach the service; check your network connection"
	case errors.Is(err, core.ErrServer):
		return fmt.Sprintf("the service reported an error: %v", err)
	default:
		return err.Error()
	}
}
