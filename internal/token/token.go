// Package token issues single-use email confirmation tokens.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// 32 random bytes gives 256 bits of entropy; the raw URL-safe base64 form is
// 43 characters.
const tokenBytes = 32

// Issue returns a new URL-safe confirmation token. Collisions are
// cryptographically negligible, but the caller still re-checks uniqueness
// against the store before persisting.
func Issue() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
