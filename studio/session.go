package studio

import (
	"time"

	"github.com/petal-labs/facet/core"
)

// GeneratedImage is one accepted result with the attempt that produced it.
type GeneratedImage struct {
	Image     core.ImageRef
	Attempt   int // 1-based attempt index within the session
	Variation int // 1-based variation index the attempt was generating
}

// FailureReason classifies a non-fatal attempt failure.
type FailureReason string

const (
	ReasonSafetyBlocked   FailureReason = "safety_blocked"
	ReasonRecitation      FailureReason = "recitation"
	ReasonNoImage         FailureReason = "no_image"
	ReasonRateLimited     FailureReason = "rate_limited"
	ReasonPayloadTooLarge FailureReason = "payload_too_large"
	ReasonTimeout         FailureReason = "timeout"
	ReasonServer          FailureReason = "server_error"
	ReasonNetwork         FailureReason = "network_error"
	ReasonUnknown         FailureReason = "unknown"
)

// AttemptFailure records one skipped attempt.
type AttemptFailure struct {
	Attempt int // 1-based attempt index
	Reason  FailureReason
	Detail  string
}

// Session is the state of one generation invocation. A Session is created
// per call, mutated only by that call's sequential loop, and returned to
// the caller when the loop completes.
//
// Invariants: Attempts <= 2*TargetCount; len(Results) <= TargetCount;
// Results are in attempt-index order.
type Session struct {
	TargetCount int
	Attempts    int
	Results     []GeneratedImage
	Failures    []AttemptFailure
	StartedAt   time.Time
	Elapsed     time.Duration
}

// Budget returns the maximum total attempts for the session.
func (s *Session) Budget() int {
	return 2 * s.TargetCount
}

// Empty reports whether the session produced nothing. Callers should treat
// this as complete failure rather than a partial result.
func (s *Session) Empty() bool {
	return len(s.Results) == 0
}

// Complete reports whether the session produced the full requested count.
func (s *Session) Complete() bool {
	return len(s.Results) >= s.TargetCount
}

// Partial reports whether the session produced some but not all results.
func (s *Session) Partial() bool {
	return !s.Empty() && !s.Complete()
}
