package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
	"github.com/ehtasham11/nutritional-AI/pkg/logger"
)

// Fixed user-facing detail strings. Which one a client sees encodes which
// check failed, so they are part of the contract.
const (
	msgRegistered       = "Registration successful! Please check your email to confirm your registration."
	msgEmailTaken       = "Email is already registered"
	msgWeakPassword     = "Password must be at least 8 characters long, include an uppercase letter, a number, and a special character."
	msgPasswordMismatch = "Passwords do not match"
	msgConfirmed        = "Email confirmed successfully! You can now log in."
	msgInvalidToken     = "Invalid or expired confirmation token"
)

// Register handles new-user signup
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	_, err := h.registration.Register(r.Context(), &req)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmailAlreadyRegistered):
		writeError(w, http.StatusBadRequest, msgEmailTaken, "EMAIL_EXISTS")
		return
	case errors.Is(err, domain.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, msgWeakPassword, "WEAK_PASSWORD")
		return
	case errors.Is(err, domain.ErrPasswordMismatch):
		writeError(w, http.StatusBadRequest, msgPasswordMismatch, "PASSWORD_MISMATCH")
		return
	case errors.Is(err, domain.ErrPasswordTooLong):
		writeError(w, http.StatusBadRequest, "Password is too long", "INVALID_INPUT")
		return
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	default:
		logger.ErrorContext(r.Context(), "Registration failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Registration failed", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": msgRegistered,
	})
}

// ConfirmEmail consumes a confirmation token from the emailed link
func (h *Handlers) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	_, err := h.registration.Confirm(r.Context(), token)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusBadRequest, msgInvalidToken, "INVALID_TOKEN")
		return
	default:
		logger.ErrorContext(r.Context(), "Email confirmation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Email confirmation failed", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": msgConfirmed,
	})
}

// ResendConfirmation re-queues the confirmation email for a pending account.
// The response is the same whether or not the email is registered.
func (h *Handlers) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required", "INVALID_INPUT")
		return
	}

	if err := h.registration.ResendConfirmation(r.Context(), req.Email); err != nil {
		logger.ErrorContext(r.Context(), "Resend confirmation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Resend failed", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "If the email is registered and pending, a confirmation email has been sent.",
	})
}
