package gemini

import (
	"errors"
	"testing"

	"github.com/petal-labs/facet/core"
)

func TestMapResponseFinishReasons(t *testing.T) {
	tests := []struct {
		name string
		resp geminiResponse
		want string
	}{
		{
			name: "candidate finish reason",
			resp: geminiResponse{
				Candidates: []geminiCandidate{{FinishReason: FinishReasonSafety}},
			},
			want: FinishReasonSafety,
		},
		{
			name: "prompt block reason when no candidates",
			resp: geminiResponse{
				PromptFeedback: &geminiPromptFeedback{BlockReason: FinishReasonProhibitedContent},
			},
			want: FinishReasonProhibitedContent,
		},
		{
			name: "empty response",
			resp: geminiResponse{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := mapResponse(&tt.resp)
			if err != nil {
				t.Fatal(err)
			}
			if got := resp.FinishReason(); got != tt.want {
				t.Errorf("FinishReason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapResponseJoinsText(t *testing.T) {
	resp, err := mapResponse(&geminiResponse{
		Candidates: []geminiCandidate{{
			Content: geminiContent{
				Parts: []geminiPart{{Text: "golden"}, {Text: "armor"}},
			},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text() != "golden armor" {
		t.Errorf("Text() = %q, want joined parts", resp.Text())
	}
}

func TestMapResponseBadInlineData(t *testing.T) {
	_, err := mapResponse(&geminiResponse{
		Candidates: []geminiCandidate{{
			Content: geminiContent{
				Parts: []geminiPart{{
					InlineData: &geminiInlineData{MimeType: "image/png", Data: "!!!"},
				}},
			},
		}},
	})
	if !errors.Is(err, core.ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
}

func TestBuildRequestOmitsEmptyConfig(t *testing.T) {
	r := buildRequest(&Request{Model: "m", Prompt: "p"}, false)
	if r.GenerationConfig != nil {
		t.Error("plain text request should omit generationConfig")
	}
	if r.SystemInstruction != nil {
		t.Error("request without instruction should omit systemInstruction")
	}
}

func TestEncodeImageDeterministic(t *testing.T) {
	ref := core.NewImageRef([]byte("same bytes"), "image/png")

	a := EncodeImage(ref)
	b := EncodeImage(ref)
	if a.Data != b.Data || a.MimeType != b.MimeType {
		t.Error("EncodeImage should be deterministic for identical input")
	}
}
