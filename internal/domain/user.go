package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Business-rule violations surfaced to clients. Handlers translate these into
// fixed response messages, everything else is reported as an internal error.
var (
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrWeakPassword           = errors.New("password does not meet strength requirements")
	ErrPasswordMismatch       = errors.New("passwords do not match")
	ErrInvalidToken           = errors.New("invalid or expired confirmation token")
	ErrPasswordTooLong        = errors.New("password exceeds maximum length")
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
)

type User struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	IsActive          bool      `json:"is_active"`
	ConfirmationToken *string   `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Pending reports whether the account still awaits email confirmation.
func (u *User) Pending() bool {
	return !u.IsActive && u.ConfirmationToken != nil
}

type RegistrationRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *RegistrationRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	// Email is matched exactly as supplied; only surrounding whitespace is
	// dropped.
	r.Email = strings.TrimSpace(r.Email)
}

func (r *RegistrationRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if !isValidEmail(r.Email) {
		return fmt.Errorf("invalid email format")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
