package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Appointment struct {
	ID             int64     `json:"id"`
	Doctor         string    `json:"doctor"`
	Specialization string    `json:"specialization"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	CreatedAt      time.Time `json:"created_at"`
}

type BookAppointmentRequest struct {
	Doctor         string `json:"doctor"`
	Specialization string `json:"specialization"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

func (r *BookAppointmentRequest) Normalize() {
	r.Doctor = strings.TrimSpace(r.Doctor)
	r.Specialization = strings.TrimSpace(r.Specialization)
	r.Date = strings.TrimSpace(r.Date)
	r.Time = strings.TrimSpace(r.Time)
}

func (r *BookAppointmentRequest) Validate() error {
	if r.Doctor == "" {
		return fmt.Errorf("doctor is required")
	}
	if r.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	if !dateRegex.MatchString(r.Date) {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if !timeRegex.MatchString(r.Time) {
		return fmt.Errorf("time must be in HH:MM format")
	}
	return nil
}
