package core

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ImageRef holds a single image as raw bytes plus its MIME type.
// It is the boundary representation for both reference photos and
// generated outputs.
type ImageRef struct {
	Bytes    []byte
	MimeType string
}

// NewImageRef creates an ImageRef, detecting the MIME type from magic
// bytes when mimeType is empty.
func NewImageRef(data []byte, mimeType string) ImageRef {
	if mimeType == "" {
		mimeType = DetectMimeType(data)
	}
	return ImageRef{Bytes: data, MimeType: mimeType}
}

// IsZero reports whether the reference holds no image data.
func (r ImageRef) IsZero() bool {
	return len(r.Bytes) == 0
}

// Base64 returns the standard base64 encoding of the image bytes.
// Encoding is deterministic: the same input always yields the same output.
func (r ImageRef) Base64() string {
	return base64.StdEncoding.EncodeToString(r.Bytes)
}

// DataURL returns the image as a data URL: data:<mime>;base64,<data>.
func (r ImageRef) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", r.MimeType, r.Base64())
}

// ParseDataURL parses a data URL back into an ImageRef.
func ParseDataURL(s string) (ImageRef, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return ImageRef{}, fmt.Errorf("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ImageRef{}, fmt.Errorf("malformed data URL: missing payload")
	}

	mimeType, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return ImageRef{}, fmt.Errorf("malformed data URL: not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ImageRef{}, fmt.Errorf("malformed data URL: %w", err)
	}

	return ImageRef{Bytes: data, MimeType: mimeType}, nil
}

// DetectMimeType detects an image MIME type from magic bytes.
// Unrecognized data defaults to image/png.
func DetectMimeType(data []byte) string {
	if len(data) >= 12 {
		if data[0] == 'R' && data[1] == 'I' && data[2] == 'F' && data[3] == 'F' &&
			data[8] == 'W' && data[9] == 'E' && data[10] == 'B' && data[11] == 'P' {
			return "image/webp"
		}
	}
	if len(data) >= 8 {
		if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47 {
			return "image/png"
		}
	}
	if len(data) >= 3 {
		if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
			return "image/jpeg"
		}
		if data[0] == 'G' && data[1] == 'I' && data[2] == 'F' {
			return "image/gif"
		}
	}
	return "image/png"
}

// FileExt returns the conventional file extension for the image's MIME type.
func (r ImageRef) FileExt() string {
	switch r.MimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
