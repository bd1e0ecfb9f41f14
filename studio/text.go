package studio

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/petal-labs/facet/core"
	"github.com/petal-labs/facet/gemini"
)

// EnhancePrompt rewrites a rough prompt into a generation-ready one with a
// single text-endpoint call.
func (s *Studio) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", core.ErrPromptRequired
	}

	resp, err := s.gen.GenerateText(ctx, &gemini.Request{
		Model:             s.textModel,
		Prompt:            prompt,
		SystemInstruction: enhanceInstruction,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &core.APIError{
			Code:    "empty_response",
			Message: "model returned no text",
			Err:     core.ErrDecode,
		}
	}
	return text, nil
}

// Caption is a structured social-media caption for a photo.
type Caption struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

// captionSchema is sent as the response schema and used to validate the
// model's JSON before decoding.
var captionSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"caption": {"type": "string"},
		"hashtags": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["caption", "hashtags"]
}`)

// GenerateCaption produces a caption plus hashtags for the reference photo
// via a single structured-output call.
func (s *Studio) GenerateCaption(ctx context.Context, ref core.ImageRef) (*Caption, error) {
	if ref.IsZero() {
		return nil, core.ErrImageRequired
	}

	resp, err := s.gen.GenerateText(ctx, &gemini.Request{
		Model:             s.textModel,
		Prompt:            captionPrompt,
		Image:             gemini.EncodeImage(ref),
		SystemInstruction: captionInstruction,
		ResponseSchema:    captionSchema,
	})
	if err != nil {
		return nil, err
	}

	raw := []byte(strings.TrimSpace(resp.Text()))
	if err := validateSchema(captionSchema, raw); err != nil {
		return nil, &core.APIError{
			Code:    "schema_mismatch",
			Message: err.Error(),
			Err:     core.ErrDecode,
		}
	}

	var caption Caption
	if err := json.Unmarshal(raw, &caption); err != nil {
		return nil, &core.APIError{
			Code:    "decode_error",
			Message: err.Error(),
			Err:     core.ErrDecode,
		}
	}
	return &caption, nil
}

// backgroundsSchema constrains background suggestions to a string list.
var backgroundsSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"backgrounds": {"type": "array", "items": {"type": "string"}, "minItems": 1}
	},
	"required": ["backgrounds"]
}`)

// SuggestBackgrounds proposes background scenes suited to the subject of
// the reference photo via a single structured-output call.
func (s *Studio) SuggestBackgrounds(ctx context.Context, ref core.ImageRef) ([]string, error) {
	if ref.IsZero() {
		return nil, core.ErrImageRequired
	}

	resp, err := s.gen.GenerateText(ctx, &gemini.Request{
		Model:             s.textModel,
		Prompt:            backgroundsPrompt,
		Image:             gemini.EncodeImage(ref),
		SystemInstruction: backgroundsInstruction,
		ResponseSchema:    backgroundsSchema,
	})
	if err != nil {
		return nil, err
	}

	raw := []byte(strings.TrimSpace(resp.Text()))
	if err := validateSchema(backgroundsSchema, raw); err != nil {
		return nil, &core.APIError{
			Code:    "schema_mismatch",
			Message: err.Error(),
			Err:     core.ErrDecode,
		}
	}

	var out struct {
		Backgrounds []string `json:"backgrounds"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &core.APIError{
			Code:    "decode_error",
			Message: err.Error(),
			Err:     core.ErrDecode,
		}
	}
	return out.Backgrounds, nil
}
