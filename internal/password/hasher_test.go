package password

import (
	"errors"
	"strings"
	"testing"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
)

func TestHashAndVerify(t *testing.T) {
	const plaintext = "Str0ng!Pass"

	digest, err := Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if digest == plaintext {
		t.Fatal("digest equals plaintext")
	}

	if !Verify(plaintext, digest) {
		t.Error("Verify() = false for matching plaintext")
	}

	if Verify("Different1!", digest) {
		t.Error("Verify() = true for non-matching plaintext")
	}
}

func TestHashIsSalted(t *testing.T) {
	const plaintext = "Str0ng!Pass"

	first, err := Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := Hash(plaintext)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same plaintext are identical, expected random salts")
	}
}

func TestHashRejectsOverlongInput(t *testing.T) {
	long := strings.Repeat("A", 73)

	_, err := Hash(long)
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Errorf("Hash() error = %v, want ErrPasswordTooLong", err)
	}

	// 72 bytes is still within bcrypt's limit.
	if _, err := Hash(strings.Repeat("A", 72)); err != nil {
		t.Errorf("Hash() error = %v for 72-byte input", err)
	}
}
