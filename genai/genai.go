// Package genai holds the studio's AI collaborator contracts plus a plain
// HTTP client that fulfills them. Model output is treated as opaque art:
// the studio renders whatever comes back and never validates it.
package genai

import (
	"context"
)

// VectorGenerator turns a text prompt into SVG markup.
type VectorGenerator interface {
	GenerateVector(ctx context.Context, prompt string) (string, error)
}

// ImageEditor rewrites an image according to a prompt. img holds the raw
// input bytes with its MIME type; the reply is encoded PNG bytes.
type ImageEditor interface {
	EditImage(ctx context.Context, img []byte, mime, prompt string) ([]byte, error)
}
