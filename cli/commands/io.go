package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petal-labs/facet/core"
	"github.com/petal-labs/facet/studio"
)

// loadImage reads a reference photo from disk and detects its media type
// from the file contents.
func loadImage(path string) (core.ImageRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.ImageRef{}, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	return core.NewImageRef(data, core.DetectMimeType(data)), nil
}

// writeImages writes every session result into dir, creating it if needed.
// File names carry the variation index and the detected extension.
func writeImages(sess *studio.Session, dir, stem string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(sess.Results))
	for _, res := range sess.Results {
		name := fmt.Sprintf("%s-%d%s", stem, res.Variation, res.Image.FileExt())
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, res.Image.Bytes, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sessionReport is the JSON shape emitted for generation sessions.
type sessionReport struct {
	Target   int                     `json:"target"`
	Attempts int                     `json:"attempts"`
	Written  []string                `json:"written"`
	Failures []studio.AttemptFailure `json:"failures,omitempty"`
	Elapsed  string                  `json:"elapsed"`
}

// reportSession prints the session outcome and translates an empty session
// into a non-zero exit.
func reportSession(sess *studio.Session, paths []string) error {
	if IsJSONOutput() {
		if err := printJSON(sessionReport{
			Target:   sess.TargetCount,
			Attempts: sess.Attempts,
			Written:  paths,
			Failures: sess.Failures,
			Elapsed:  sess.Elapsed.Round(timePrecision).String(),
		}); err != nil {
			return err
		}
	} else {
		for _, p := range paths {
			fmt.Println(p)
		}
		if sess.Partial() {
			fmt.Fprintf(os.Stderr, "generated %d of %d images\n", len(sess.Results), sess.TargetCount)
		}
	}

	if sess.Empty() {
		reasons := make([]string, 0, len(sess.Failures))
		for _, f := range sess.Failures {
			reasons = append(reasons, string(f.Reason))
		}
		return &exitError{
			msg:  fmt.Sprintf("no images generated after %d attempts (%s)", sess.Attempts, strings.Join(reasons, ", ")),
			code: ExitProvider,
		}
	}
	return nil
}
