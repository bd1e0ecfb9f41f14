package core

import "time"

// ProgressHook receives notifications about generation lifecycle events.
// Implementations can use this for logging, progress bars, metrics, etc.
//
// Event types are designed to NEVER include sensitive data:
//   - API keys are NEVER included (stored separately as core.Secret)
//   - Prompt content is NEVER included
//   - Image bytes are NEVER included (only sizes and MIME types)
//
// Only operational metadata suitable for logging is exposed.
type ProgressHook interface {
	// OnAttemptStart is called when a generation attempt begins.
	OnAttemptStart(e AttemptStartEvent)

	// OnAttemptEnd is called when a generation attempt completes,
	// successfully or not.
	OnAttemptEnd(e AttemptEndEvent)

	// OnRetryWait is called before the transport sleeps ahead of a retry.
	OnRetryWait(e RetryWaitEvent)

	// OnImage is called each time a generated image is accepted, so a
	// caller can render partial results incrementally.
	OnImage(e ImageEvent)
}

// AttemptStartEvent contains metadata about a starting generation attempt.
type AttemptStartEvent struct {
	Attempt int       // 1-based attempt index
	Budget  int       // Total attempt budget for the session
	Start   time.Time // When the attempt started
}

// AttemptEndEvent contains metadata about a completed generation attempt.
// Err is nil when the attempt produced an image.
type AttemptEndEvent struct {
	Attempt int
	Start   time.Time
	End     time.Time
	Err     error
}

// Duration returns the elapsed time for the attempt.
func (e AttemptEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// RetryWaitEvent contains metadata about a transport-level retry wait.
type RetryWaitEvent struct {
	Retry int           // 0-based retry index within one logical request
	Delay time.Duration // How long the transport will sleep
	Cause error         // Classified error that triggered the retry
}

// ImageEvent contains metadata about an accepted generated image.
type ImageEvent struct {
	Attempt  int    // Attempt that produced the image
	Index    int    // 0-based position in the result sequence
	MimeType string // MIME type of the generated image
	Size     int    // Size in bytes
}

// NoopProgressHook is a no-op implementation of ProgressHook.
// Use this as a default when no progress reporting is configured.
type NoopProgressHook struct{}

// OnAttemptStart does nothing.
func (NoopProgressHook) OnAttemptStart(AttemptStartEvent) {}

// OnAttemptEnd does nothing.
func (NoopProgressHook) OnAttemptEnd(AttemptEndEvent) {}

// OnRetryWait does nothing.
func (NoopProgressHook) OnRetryWait(RetryWaitEvent) {}

// OnImage does nothing.
func (NoopProgressHook) OnImage(ImageEvent) {}

// Compile-time check that NoopProgressHook implements ProgressHook.
var _ ProgressHook = NoopProgressHook{}
