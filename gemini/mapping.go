package gemini

import (
	"encoding/base64"
	"strings"

	"github.com/petal-labs/facet/core"
)

// buildRequest converts a public Request to the Gemini wire format.
// imageOutput selects the image-generation response modalities.
func buildRequest(req *Request, imageOutput bool) *geminiRequest {
	parts := []geminiPart{{Text: req.Prompt}}

	if req.Image != nil {
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: req.Image.MimeType,
				Data:     req.Image.Data,
			},
		})
	}

	r := &geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: parts,
		}},
	}

	if req.SystemInstruction != "" {
		r.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}

	cfg := &geminiGenConfig{Temperature: req.Temperature}
	if imageOutput {
		cfg.ResponseModalities = []string{"TEXT", "IMAGE"}
	}
	if len(req.ResponseSchema) > 0 {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.ResponseSchema
	}
	if cfg.Temperature != nil || cfg.ResponseMIMEType != "" || len(cfg.ResponseModalities) > 0 {
		r.GenerationConfig = cfg
	}

	return r
}

// mapResponse converts a Gemini wire response to the public form,
// flattening each candidate's parts into joined text plus the first
// inline image.
func mapResponse(resp *geminiResponse) (*Response, error) {
	out := &Response{}

	if resp.PromptFeedback != nil {
		out.BlockReason = resp.PromptFeedback.BlockReason
	}

	for _, cand := range resp.Candidates {
		mapped := Candidate{FinishReason: cand.FinishReason}

		var textParts []string
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				textParts = append(textParts, part.Text)
			}
			if part.InlineData != nil && mapped.Image == nil {
				data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, newDecodeError(err)
				}
				img := core.NewImageRef(data, part.InlineData.MimeType)
				mapped.Image = &img
			}
		}
		mapped.Text = strings.Join(textParts, " ")

		out.Candidates = append(out.Candidates, mapped)
	}

	return out, nil
}
