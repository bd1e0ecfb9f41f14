package gemini

import (
	"encoding/json"

	"github.com/petal-labs/facet/core"
)

// InlineImage is a reference image in its transferable form: base64 data
// plus MIME type. Encode once with EncodeImage and reuse across attempts so
// the raw bytes are never re-read.
type InlineImage struct {
	MimeType string
	Data     string // base64 encoded
}

// EncodeImage converts an ImageRef into its inline request form.
// Encoding is deterministic.
func EncodeImage(ref core.ImageRef) *InlineImage {
	return &InlineImage{
		MimeType: ref.MimeType,
		Data:     ref.Base64(),
	}
}

// Request describes one generateContent call.
type Request struct {
	// Model is the model ID, e.g. "gemini-2.5-flash-image".
	Model string

	// Prompt is the user prompt text.
	Prompt string

	// Image optionally attaches a pre-encoded reference image.
	Image *InlineImage

	// SystemInstruction optionally steers the model.
	SystemInstruction string

	// ResponseSchema optionally requests structured JSON output conforming
	// to the given schema (text endpoint only).
	ResponseSchema json.RawMessage

	// Temperature optionally overrides the sampling temperature.
	Temperature *float32
}

// Candidate is one response candidate with its parts flattened.
type Candidate struct {
	Text         string
	Image        *core.ImageRef
	FinishReason string
}

// Response is the decoded result of a generateContent call.
type Response struct {
	Candidates  []Candidate
	BlockReason string // prompt-level block, empty when the prompt was accepted
}

// FirstImage returns the first candidate image, or nil when the response
// contains none.
func (r *Response) FirstImage() *core.ImageRef {
	for _, cand := range r.Candidates {
		if cand.Image != nil {
			return cand.Image
		}
	}
	return nil
}

// Text returns the first candidate's text.
func (r *Response) Text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].Text
}

// FinishReason returns the first candidate's finish reason, or the prompt
// block reason when no candidate was produced.
func (r *Response) FinishReason() string {
	if len(r.Candidates) > 0 {
		return r.Candidates[0].FinishReason
	}
	return r.BlockReason
}
