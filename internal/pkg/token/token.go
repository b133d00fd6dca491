package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes is 32 bytes (256 bits) of entropy per invitation token.
const tokenBytes = 32

// New returns an opaque, URL-safe random token suitable for single-use
// invitation links.
func New() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
