package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
)

// bcrypt silently ignores input past 72 bytes, so anything longer is rejected
// outright instead of being truncated.
const maxPasswordBytes = 72

// Hash produces a salted bcrypt digest. Hashing the same plaintext twice
// yields different digests.
func Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", fmt.Errorf("password is %d bytes, limit is %d: %w", len(plaintext), maxPasswordBytes, domain.ErrPasswordTooLong)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify checks a candidate plaintext against a stored digest.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
