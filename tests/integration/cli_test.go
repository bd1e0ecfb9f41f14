//go:build integration

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngPixel is a minimal valid PNG file (1x1 transparent pixel).
var pngPixel = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

// isolatedHome returns env overrides pointing HOME at a temp directory so
// tests never touch the real key file or config.
func isolatedHome(t *testing.T) []string {
	t.Helper()
	return []string{"HOME=" + t.TempDir(), "FACET_API_KEY="}
}

func TestCLI_Version(t *testing.T) {
	result := runCLI(t, nil, "version")

	if result.ExitCode != 0 {
		t.Errorf("Exit code = %d, want 0\nStderr: %s", result.ExitCode, result.Stderr)
	}
	if !strings.Contains(result.Stdout, "facet") {
		t.Errorf("Stdout = %q, want it to mention facet", result.Stdout)
	}
}

func TestCLI_VersionJSON(t *testing.T) {
	result := runCLI(t, nil, "version", "--json")

	if result.ExitCode != 0 {
		t.Errorf("Exit code = %d, want 0\nStderr: %s", result.ExitCode, result.Stderr)
	}

	var output map[string]any
	if err := json.Unmarshal([]byte(result.Stdout), &output); err != nil {
		t.Fatalf("Output is not valid JSON: %v\nOutput: %s", err, result.Stdout)
	}
	if _, ok := output["version"]; !ok {
		t.Error("JSON output missing 'version' field")
	}
}

func TestCLI_KeysRoundTrip(t *testing.T) {
	env := isolatedHome(t)

	// Piped stdin takes the non-terminal input path
	result := runCLIWithStdin(t, "test-key-abc\n", env, "keys", "set")
	if result.ExitCode != 0 {
		t.Fatalf("keys set exit code = %d\nStderr: %s", result.ExitCode, result.Stderr)
	}

	result = runCLI(t, env, "keys", "show")
	if result.ExitCode != 0 {
		t.Fatalf("keys show exit code = %d\nStderr: %s", result.ExitCode, result.Stderr)
	}
	if !strings.Contains(result.Stdout, "stored") {
		t.Errorf("keys show output = %q, want it to report a stored key", result.Stdout)
	}
	// The key value itself must never be printed
	if strings.Contains(result.Stdout, "test-key-abc") {
		t.Error("keys show leaked the key value")
	}

	result = runCLI(t, env, "keys", "delete")
	if result.ExitCode != 0 {
		t.Fatalf("keys delete exit code = %d\nStderr: %s", result.ExitCode, result.Stderr)
	}

	result = runCLI(t, env, "keys", "show")
	if !strings.Contains(result.Stdout, "No API key") {
		t.Errorf("keys show after delete = %q, want no key stored", result.Stdout)
	}
}

func TestCLI_GenerateMissingKey(t *testing.T) {
	env := isolatedHome(t)

	tmpDir := t.TempDir()
	imgPath := filepath.Join(tmpDir, "photo.png")
	if err := os.WriteFile(imgPath, pngPixel, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	result := runCLI(t, env, "generate", "--image", imgPath, "--prompt", "soft light")

	if result.ExitCode == 0 {
		t.Error("Expected non-zero exit code without an API key")
	}
	if !strings.Contains(result.Stderr, "API key") {
		t.Errorf("Stderr = %q, want it to mention the API key", result.Stderr)
	}
}

func TestCLI_GenerateMissingImage(t *testing.T) {
	env := isolatedHome(t)

	result := runCLI(t, env, "generate", "--prompt", "soft light")

	if result.ExitCode == 0 {
		t.Error("Expected non-zero exit code for missing --image flag")
	}
	if !strings.Contains(result.Stderr, "image") {
		t.Errorf("Stderr = %q, want it to mention the image flag", result.Stderr)
	}
}

func TestCLI_Generate(t *testing.T) {
	skipIfNoGeminiKey(t)

	tmpDir := t.TempDir()
	imgPath := filepath.Join(tmpDir, "photo.png")
	if err := os.WriteFile(imgPath, pngPixel, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	outDir := filepath.Join(tmpDir, "out")
	result := runCLI(t, []string{"FACET_API_KEY=" + getGeminiKey(t)},
		"generate",
		"--image", imgPath,
		"--prompt", "bright studio lighting, clean background",
		"--count", "1",
		"--out", outDir)

	if result.ExitCode != 0 {
		t.Fatalf("Exit code = %d\nStderr: %s", result.ExitCode, result.Stderr)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) == 0 {
		t.Error("No images written")
	}

	t.Logf("Output: %s", result.Stdout)
}

func TestCLI_Enhance(t *testing.T) {
	skipIfNoGeminiKey(t)

	result := runCLI(t, []string{"FACET_API_KEY=" + getGeminiKey(t)},
		"enhance", "--prompt", "moody portrait")

	if result.ExitCode != 0 {
		t.Fatalf("Exit code = %d\nStderr: %s", result.ExitCode, result.Stderr)
	}
	if strings.TrimSpace(result.Stdout) == "" {
		t.Error("Stdout is empty")
	}

	t.Logf("Output: %s", result.Stdout)
}
