package password

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const specialChars = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"

// IsStrong reports whether a password satisfies the signup policy: at least
// 8 characters, with at least one uppercase letter, one digit, and one
// character from the special set. Length and character classes are evaluated
// per rune, so multi-byte letters count once and non-ASCII uppercase counts
// as uppercase.
func IsStrong(password string) bool {
	if utf8.RuneCountInString(password) < 8 {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(specialChars, c):
			hasSpecial = true
		}
		if hasUpper && hasDigit && hasSpecial {
			return true
		}
	}

	return false
}
