// Package qr renders QR codes as base64-encoded PNG payloads for entry
// passes.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize is the side length in pixels of the generated PNG.
const imageSize = 256

// Encoder renders content into an image payload.
type Encoder interface {
	EncodeBase64PNG(content string) (string, error)
}

type pngEncoder struct{}

// NewEncoder returns the production QR encoder.
func NewEncoder() Encoder {
	return pngEncoder{}
}

// EncodeBase64PNG encodes content into a medium-recovery QR PNG and
// returns it base64 encoded, ready to embed in a JSON response.
func (pngEncoder) EncodeBase64PNG(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
