package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/petal-labs/facet/core"
)

// fastRetry returns a retry policy suitable for tests.
func fastRetry(maxRetries int) core.RetryPolicy {
	return core.NewRetryPolicy(core.RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   10 * time.Millisecond,
		Jitter:     0,
	})
}

func successBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(geminiResponse{
		Candidates: []geminiCandidate{{
			Content: geminiContent{
				Parts: []geminiPart{{Text: "ok"}},
			},
			FinishReason: FinishReasonStop,
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestSendRetriesRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
			return
		}
		w.Write(successBody(t))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(3)))

	resp, err := c.GenerateText(context.Background(), &Request{Model: "gemini-2.5-flash", Prompt: "hi"})
	if err != nil {
		t.Fatalf("429 then 200 should succeed, got %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("Text() = %q, want ok", resp.Text())
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2", got)
	}
}

func TestSendRateLimitBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(2)))

	_, err := c.GenerateText(context.Background(), &Request{Model: "gemini-2.5-flash", Prompt: "hi"})
	if !errors.Is(err, core.ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
	// Initial attempt plus two retries.
	if got := calls.Load(); got != 3 {
		t.Errorf("server calls = %d, want 3", got)
	}
}

func TestSendPayloadTooLargeNeverRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(5)))

	_, err := c.GenerateImage(context.Background(), &Request{Model: "gemini-2.5-flash-image", Prompt: "hi"})
	if !errors.Is(err, core.ErrPayloadTooLarge) {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want exactly 1 (413 must not be retried)", got)
	}
}

func TestSendGatewayTimeoutNotRetriedInternally(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(5)))

	_, err := c.GenerateImage(context.Background(), &Request{Model: "gemini-2.5-flash-image", Prompt: "hi"})
	if !errors.Is(err, core.ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1 (504 retries belong to the attempt budget)", got)
	}
}

func TestSendServerErrorCarriesBody(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("backend exploded"))
	}))
	defer server.Close()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(5)))

	_, err := c.GenerateText(context.Background(), &Request{Model: "gemini-2.5-flash", Prompt: "hi"})
	if !errors.Is(err, core.ErrServer) {
		t.Fatalf("err = %v, want ErrServer", err)
	}

	var ae *core.APIError
	if !errors.As(err, &ae) {
		t.Fatal("expected APIError")
	}
	if ae.Message != "backend exploded" {
		t.Errorf("Message = %q, want the response body text", ae.Message)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1 (5xx is not retried at the transport)", got)
	}
}

func TestSendNetworkErrorRetried(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // all connections now fail

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(2)))

	start := time.Now()
	_, err := c.GenerateText(context.Background(), &Request{Model: "gemini-2.5-flash", Prompt: "hi"})
	if !errors.Is(err, core.ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	// Two backoff waits of 1ms and 2ms must have happened.
	if elapsed := time.Since(start); elapsed < 3*time.Millisecond {
		t.Errorf("elapsed = %v, want at least the backoff schedule", elapsed)
	}
}

func TestSendAttemptTimeoutRetried(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			<-release // first attempt hangs past the attempt deadline
			return
		}
		w.Write(successBody(t))
	}))
	defer server.Close()
	defer close(release)

	c := New("test-key",
		WithBaseURL(server.URL),
		WithTimeout(20*time.Millisecond),
		WithRetryPolicy(fastRetry(2)))

	resp, err := c.GenerateText(context.Background(), &Request{Model: "gemini-2.5-flash", Prompt: "hi"})
	if err != nil {
		t.Fatalf("timeout then success should succeed, got %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("Text() = %q, want ok", resp.Text())
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2", got)
	}
}

func TestSendContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("test-key", WithBaseURL(server.URL), WithRetryPolicy(fastRetry(5)))

	_, err := c.GenerateText(ctx, &Request{Model: "gemini-2.5-flash", Prompt: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSendReportsRetryWaits(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write(successBody(t))
	}))
	defer server.Close()

	hook := &recordingHook{}
	c := New("test-key",
		WithBaseURL(server.URL),
		WithRetryPolicy(fastRetry(3)),
		WithProgressHook(hook))

	if _, err := c.GenerateText(context.Background(), &Request{Model: "gemini-2.5-flash", Prompt: "hi"}); err != nil {
		t.Fatal(err)
	}

	if len(hook.waits) != 1 {
		t.Fatalf("retry waits = %d, want 1", len(hook.waits))
	}
	if !errors.Is(hook.waits[0].Cause, core.ErrRateLimited) {
		t.Errorf("wait cause = %v, want ErrRateLimited", hook.waits[0].Cause)
	}
}

// recordingHook captures retry-wait events.
type recordingHook struct {
	core.NoopProgressHook
	waits []core.RetryWaitEvent
}

func (h *recordingHook) OnRetryWait(e core.RetryWaitEvent) {
	h.waits = append(h.waits, e)
}
