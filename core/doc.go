// Package core provides the shared types for the Facet photo-variation SDK.
//
// Facet is a Go-native client for generating stylistic variations and
// restorations of a reference photo through a multimodal generation API.
// The core package defines the building blocks the transport and
// orchestration layers are assembled from.
//
// # Images
//
// Reference photos and generated outputs travel as [ImageRef] values, a pair
// of raw bytes and a MIME type. [ImageRef.DataURL] produces the
// data-URL-embedded base64 form used at the API boundary; encoding is
// deterministic, so the same input always yields the same payload:
//
//	ref := core.NewImageRef(data, "")
//	url := ref.DataURL() // data:image/png;base64,...
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//   - [ErrUnauthorized]: Invalid or missing API key
//   - [ErrRateLimited]: Remote rate limit exceeded (HTTP 429)
//   - [ErrPayloadTooLarge]: Request body rejected (HTTP 413), never retried
//   - [ErrTimeout]: Attempt deadline expired or gateway timeout (HTTP 504)
//   - [ErrServer]: Remote server error
//   - [ErrNetwork]: Network connectivity issues
//   - [ErrDecode]: Response parsing failed
//   - [ErrImageRequired], [ErrPromptRequired]: Input validation failures
//
// Use errors.Is to check error types:
//
//	if errors.Is(err, core.ErrRateLimited) {
//	    // Handle rate limiting
//	}
//
// # Retry Policy
//
// Configure retry behavior with [RetryPolicy]:
//
//	policy := core.NewRetryPolicy(core.RetryConfig{
//	    MaxRetries: 3,
//	    BaseDelay:  time.Second,
//	})
//
// The default policy retries rate limits with jittered exponential backoff
// and network failures with plain exponential backoff. Payload-too-large and
// gateway-timeout responses are never retried.
//
// # Progress Reporting
//
// Implement [ProgressHook] to observe the generation lifecycle (attempt
// start/end, retry waits, produced images). Hooks receive only operational
// metadata; prompt content, image bytes, and API keys are never included.
package core
