package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ehtasham11/nutritional-AI/internal/service"
)

type Handlers struct {
	registration service.RegistrationService
	appointments service.AppointmentService
}

func New(
	registration service.RegistrationService,
	appointments service.AppointmentService,
) *Handlers {
	return &Handlers{
		registration: registration,
		appointments: appointments,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message, code string) {
	response := map[string]string{
		"detail": message,
		"code":   code,
	}
	writeJSON(w, statusCode, response)
}

func parsePagination(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	return limit, offset
}
