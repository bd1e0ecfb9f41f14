package gemini

import (
	"context"
	"encoding/json"
)

// GenerateImage sends one image-generation request. The transport applies
// the per-attempt timeout and retry policy; the result carries the first
// inline image of each candidate, or a finish reason when none was produced.
func (c *Client) GenerateImage(ctx context.Context, req *Request) (*Response, error) {
	return c.generate(ctx, req, true)
}

// GenerateText sends one text-generation request. When req.ResponseSchema
// is set, the model is asked for structured JSON output conforming to it.
func (c *Client) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	return c.generate(ctx, req, false)
}

func (c *Client) generate(ctx context.Context, req *Request, imageOutput bool) (*Response, error) {
	body, err := json.Marshal(buildRequest(req, imageOutput))
	if err != nil {
		return nil, newDecodeError(err)
	}

	respBody, err := c.send(ctx, c.endpoint(req.Model), body)
	if err != nil {
		return nil, err
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(respBody, &gemResp); err != nil {
		return nil, newDecodeError(err)
	}

	return mapResponse(&gemResp)
}
