package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
	"github.com/ehtasham11/nutritional-AI/pkg/logger"
)

// BookAppointment creates a nutritionist appointment
func (h *Handlers) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req domain.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	appointment, err := h.appointments.Book(r.Context(), &req)
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to book appointment", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to book appointment", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": fmt.Sprintf("Appointment booked successfully with Dr. %s (Specialization: %s) on %s at %s.",
			appointment.Doctor, appointment.Specialization, appointment.Date, appointment.Time),
		"appointment": appointment,
	})
}

// ListAppointments returns booked appointments
func (h *Handlers) ListAppointments(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)

	appointments, err := h.appointments.List(r.Context(), limit, offset)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list appointments", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list appointments", "INTERNAL_ERROR")
		return
	}

	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	writeJSON(w, http.StatusOK, appointments)
}

// DeleteAppointment cancels an appointment by ID
func (h *Handlers) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID", "INVALID_INPUT")
		return
	}

	err = h.appointments.Delete(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Appointment with ID %d not found.", id), "NOT_FOUND")
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to delete appointment", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete appointment", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Appointment with ID %d has been successfully deleted.", id),
	})
}
