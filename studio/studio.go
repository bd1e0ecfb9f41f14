// Package studio drives photo-variation generation sessions against the
// Gemini client: sequential attempts with per-attempt failure tolerance,
// partial-success aggregation, and a bounded attempt budget.
package studio

import (
	"context"
	"time"

	"github.com/petal-labs/facet/core"
	"github.com/petal-labs/facet/gemini"
)

// Generator is the remote-generation surface the studio orchestrates.
// *gemini.Client satisfies it.
type Generator interface {
	// GenerateImage sends one image-generation request.
	GenerateImage(ctx context.Context, req *gemini.Request) (*gemini.Response, error)

	// GenerateText sends one text-generation request.
	GenerateText(ctx context.Context, req *gemini.Request) (*gemini.Response, error)
}

// Compile-time check that the Gemini client satisfies Generator.
var _ Generator = (*gemini.Client)(nil)

// Default models and pacing.
const (
	DefaultImageModel = "gemini-2.5-flash-image"
	DefaultTextModel  = "gemini-2.5-flash"

	// DefaultAttemptDelay is the fixed pause between generation attempts
	// after the first, so sequential attempts don't burst the service.
	DefaultAttemptDelay = 2 * time.Second
)

// Variation count bounds per session.
const (
	MinVariations = 1
	MaxVariations = 3
)

// Studio orchestrates generation sessions. Studio is safe for concurrent
// use; each call runs its own session.
type Studio struct {
	gen          Generator
	hook         core.ProgressHook
	imageModel   string
	textModel    string
	attemptDelay time.Duration
}

// Option configures a Studio.
type Option func(*Studio)

// WithProgressHook sets the hook notified as attempts run and images arrive.
func WithProgressHook(h core.ProgressHook) Option {
	return func(s *Studio) {
		if h != nil {
			s.hook = h
		}
	}
}

// WithImageModel overrides the image-generation model.
func WithImageModel(model string) Option {
	return func(s *Studio) {
		if model != "" {
			s.imageModel = model
		}
	}
}

// WithTextModel overrides the text-generation model.
func WithTextModel(model string) Option {
	return func(s *Studio) {
		if model != "" {
			s.textModel = model
		}
	}
}

// WithAttemptDelay overrides the fixed inter-attempt delay.
func WithAttemptDelay(d time.Duration) Option {
	return func(s *Studio) {
		if d >= 0 {
			s.attemptDelay = d
		}
	}
}

// New creates a Studio around a Generator.
func New(gen Generator, opts ...Option) *Studio {
	s := &Studio{
		gen:          gen,
		hook:         core.NoopProgressHook{},
		imageModel:   DefaultImageModel,
		textModel:    DefaultTextModel,
		attemptDelay: DefaultAttemptDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
