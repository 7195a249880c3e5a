package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ehtasham11/nutritional-AI/internal/dietplan"
)

// CalculateDietPlan computes daily caloric needs and a matching diet plan
func (h *Handlers) CalculateDietPlan(w http.ResponseWriter, r *http.Request) {
	var in dietplan.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_INPUT")
		return
	}

	if in.Weight <= 0 || in.Height <= 0 || in.Age <= 0 {
		writeError(w, http.StatusBadRequest, "Weight, height and age must be positive", "INVALID_INPUT")
		return
	}

	result, err := dietplan.Calculate(in)
	if errors.Is(err, dietplan.ErrInvalidGender) || errors.Is(err, dietplan.ErrInvalidActivityLevel) {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_INPUT")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to calculate diet plan", "INTERNAL_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
