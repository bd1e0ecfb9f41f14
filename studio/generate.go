package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/petal-labs/facet/core"
	"github.com/petal-labs/facet/gemini"
)

// triesPerVariation bounds the attempts spent on a single variation index,
// which keeps the session's total attempt count within 2*TargetCount.
const triesPerVariation = 2

// GenerateVariations runs one variation session: up to targetCount styled
// images of the reference photo. Attempts are strictly sequential; each
// variation index gets at most two tries, so the session issues at most
// 2*targetCount attempts in total. Individual attempt failures are recorded
// and skipped; the returned Session may hold fewer images than requested,
// down to none. Only precondition violations and caller cancellation return
// an error.
//
// targetCount is clamped to [MinVariations, MaxVariations].
func (s *Studio) GenerateVariations(ctx context.Context, ref core.ImageRef, prompt string, targetCount int) (*Session, error) {
	if ref.IsZero() {
		return nil, core.ErrImageRequired
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, core.ErrPromptRequired
	}
	if targetCount < MinVariations {
		targetCount = MinVariations
	}
	if targetCount > MaxVariations {
		targetCount = MaxVariations
	}

	return s.run(ctx, ref, prompt, portraitInstruction, targetCount)
}

// RestorePhoto runs a restoration session: a single restored image of the
// reference photo using the fixed restoration prompt. No user prompt text
// is required.
func (s *Studio) RestorePhoto(ctx context.Context, ref core.ImageRef) (*Session, error) {
	if ref.IsZero() {
		return nil, core.ErrImageRequired
	}

	return s.run(ctx, ref, restorationPrompt, restorationInstruction, 1)
}

// run is the shared session loop. The reference image is encoded exactly
// once and reused for every attempt.
func (s *Studio) run(ctx context.Context, ref core.ImageRef, basePrompt, instruction string, target int) (*Session, error) {
	sess := &Session{
		TargetCount: target,
		StartedAt:   time.Now(),
	}
	budget := sess.Budget()
	inline := gemini.EncodeImage(ref)

	for index := 1; index <= target && len(sess.Results) < target; index++ {
		for try := 0; try < triesPerVariation; try++ {
			// Fixed pause between attempts after the first, so sequential
			// attempts don't burst the remote service.
			if sess.Attempts > 0 {
				select {
				case <-ctx.Done():
					sess.Elapsed = time.Since(sess.StartedAt)
					return sess, ctx.Err()
				case <-time.After(s.attemptDelay):
				}
			}

			sess.Attempts++
			attempt := sess.Attempts
			start := time.Now()

			s.hook.OnAttemptStart(core.AttemptStartEvent{
				Attempt: attempt,
				Budget:  budget,
				Start:   start,
			})

			resp, err := s.gen.GenerateImage(ctx, &gemini.Request{
				Model:             s.imageModel,
				Prompt:            variationPrompt(basePrompt, index),
				Image:             inline,
				SystemInstruction: instruction,
			})

			var img *core.ImageRef
			if err == nil {
				img = resp.FirstImage()
				if img == nil {
					err = fmt.Errorf("no image in response (finish reason %q)", resp.FinishReason())
					sess.Failures = append(sess.Failures, AttemptFailure{
						Attempt: attempt,
						Reason:  classifyFinishReason(resp.FinishReason()),
						Detail:  err.Error(),
					})
				}
			} else {
				// Caller cancellation ends the session; everything else,
				// transport-retry exhaustion included, only costs this try.
				if ctx.Err() != nil {
					sess.Elapsed = time.Since(sess.StartedAt)
					return sess, ctx.Err()
				}
				sess.Failures = append(sess.Failures, AttemptFailure{
					Attempt: attempt,
					Reason:  classifyError(err),
					Detail:  err.Error(),
				})
			}

			s.hook.OnAttemptEnd(core.AttemptEndEvent{
				Attempt: attempt,
				Start:   start,
				End:     time.Now(),
				Err:     err,
			})

			if err != nil {
				continue
			}

			sess.Results = append(sess.Results, GeneratedImage{
				Image:     *img,
				Attempt:   attempt,
				Variation: index,
			})
			s.hook.OnImage(core.ImageEvent{
				Attempt:  attempt,
				Index:    len(sess.Results) - 1,
				MimeType: img.MimeType,
				Size:     len(img.Bytes),
			})
			break
		}
	}

	sess.Elapsed = time.Since(sess.StartedAt)
	return sess, nil
}

// classifyFinishReason maps a model finish reason to an attempt failure
// classification.
func classifyFinishReason(reason string) FailureReason {
	switch reason {
	case gemini.FinishReasonSafety, gemini.FinishReasonImageSafety, gemini.FinishReasonProhibitedContent:
		return ReasonSafetyBlocked
	case gemini.FinishReasonRecitation:
		return ReasonRecitation
	case "", gemini.FinishReasonStop:
		return ReasonNoImage
	default:
		return ReasonUnknown
	}
}

// classifyError maps a transport error to an attempt failure classification.
func classifyError(err error) FailureReason {
	switch {
	case errors.Is(err, core.ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, core.ErrPayloadTooLarge):
		return ReasonPayloadTooLarge
	case errors.Is(err, core.ErrTimeout):
		return ReasonTimeout
	case errors.Is(err, core.ErrServer):
		return ReasonServer
	case errors.Is(err, core.ErrNetwork):
		return ReasonNetwork
	default:
		return ReasonUnknown
	}
}
