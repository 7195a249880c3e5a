package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
	"github.com/ehtasham11/nutritional-AI/internal/handlers"
)

// ---------- Mocks ----------

type mockRegistrationService struct {
	registerErr error
	confirmErr  error
	resendErr   error

	lastRequest *domain.RegistrationRequest
	lastToken   string
}

func (m *mockRegistrationService) Register(_ context.Context, req *domain.RegistrationRequest) (*domain.User, error) {
	m.lastRequest = req
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	tok := "issued-token"
	return &domain.User{ID: 1, FirstName: req.FirstName, Email: req.Email, ConfirmationToken: &tok}, nil
}

func (m *mockRegistrationService) Confirm(_ context.Context, token string) (*domain.User, error) {
	m.lastToken = token
	if m.confirmErr != nil {
		return nil, m.confirmErr
	}
	return &domain.User{ID: 1, IsActive: true}, nil
}

func (m *mockRegistrationService) ResendConfirmation(_ context.Context, email string) error {
	return m.resendErr
}

type mockAppointmentService struct {
	appointments []domain.Appointment
	deleteErr    error
}

func (m *mockAppointmentService) Book(_ context.Context, req *domain.BookAppointmentRequest) (*domain.Appointment, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &domain.Appointment{ID: 7, Doctor: req.Doctor, Specialization: req.Specialization, Date: req.Date, Time: req.Time}, nil
}

func (m *mockAppointmentService) List(_ context.Context, limit, offset int) ([]domain.Appointment, error) {
	return m.appointments, nil
}

func (m *mockAppointmentService) Delete(_ context.Context, id int64) error {
	return m.deleteErr
}

func newRouter(reg *mockRegistrationService, appt *mockAppointmentService) http.Handler {
	h := handlers.New(reg, appt)

	r := chi.NewRouter()
	r.Post("/register/", h.Register)
	r.Get("/confirm-email/{token}", h.ConfirmEmail)
	r.Post("/resend-confirmation", h.ResendConfirmation)
	r.Post("/diet-plan", h.CalculateDietPlan)
	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", h.BookAppointment)
		r.Get("/", h.ListAppointments)
		r.Delete("/{id}", h.DeleteAppointment)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func registrationBody() map[string]string {
	return map[string]string{
		"firstName":       "Ada",
		"lastName":        "Lovelace",
		"email":           "ada@example.com",
		"password":        "Str0ng!Pass",
		"confirmPassword": "Str0ng!Pass",
	}
}

// ---------- Registration ----------

func TestRegisterEndpointSuccess(t *testing.T) {
	reg := &mockRegistrationService{}
	router := newRouter(reg, &mockAppointmentService{})

	rec, body := doJSON(t, router, http.MethodPost, "/register/", registrationBody())

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	want := "Registration successful! Please check your email to confirm your registration."
	if body["message"] != want {
		t.Errorf("message = %q, want %q", body["message"], want)
	}
	if reg.lastRequest == nil || reg.lastRequest.Email != "ada@example.com" {
		t.Error("service did not receive the decoded request")
	}
}

func TestRegisterEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantDetail string
	}{
		{"duplicate email", domain.ErrEmailAlreadyRegistered, "Email is already registered"},
		{"weak password", domain.ErrWeakPassword, "Password must be at least 8 characters long, include an uppercase letter, a number, and a special character."},
		{"password mismatch", domain.ErrPasswordMismatch, "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := &mockRegistrationService{registerErr: tt.serviceErr}
			router := newRouter(reg, &mockAppointmentService{})

			rec, body := doJSON(t, router, http.MethodPost, "/register/", registrationBody())

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if body["detail"] != tt.wantDetail {
				t.Errorf("detail = %q, want %q", body["detail"], tt.wantDetail)
			}
		})
	}
}

func TestRegisterEndpointBadJSON(t *testing.T) {
	router := newRouter(&mockRegistrationService{}, &mockAppointmentService{})

	req := httptest.NewRequest(http.MethodPost, "/register/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// ---------- Confirmation ----------

func TestConfirmEmailEndpointSuccess(t *testing.T) {
	reg := &mockRegistrationService{}
	router := newRouter(reg, &mockAppointmentService{})

	rec, body := doJSON(t, router, http.MethodGet, "/confirm-email/some-token", nil)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	want := "Email confirmed successfully! You can now log in."
	if body["message"] != want {
		t.Errorf("message = %q, want %q", body["message"], want)
	}
	if reg.lastToken != "some-token" {
		t.Errorf("service received token %q, want %q", reg.lastToken, "some-token")
	}
}

func TestConfirmEmailEndpointInvalidToken(t *testing.T) {
	reg := &mockRegistrationService{confirmErr: domain.ErrInvalidToken}
	router := newRouter(reg, &mockAppointmentService{})

	rec, body := doJSON(t, router, http.MethodGet, "/confirm-email/not-a-real-token", nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if body["detail"] != "Invalid or expired confirmation token" {
		t.Errorf("detail = %q, want invalid-token message", body["detail"])
	}
}

// ---------- Diet plan ----------

func TestDietPlanEndpoint(t *testing.T) {
	router := newRouter(&mockRegistrationService{}, &mockAppointmentService{})

	rec, body := doJSON(t, router, http.MethodPost, "/diet-plan", map[string]interface{}{
		"gender":        "male",
		"weight":        80,
		"height":        180,
		"age":           30,
		"activityLevel": "moderate",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if _, ok := body["bmr"]; !ok {
		t.Error("response missing bmr")
	}
	if _, ok := body["selected_diet_plan"]; !ok {
		t.Error("response missing selected_diet_plan")
	}
}

func TestDietPlanEndpointInvalidInput(t *testing.T) {
	router := newRouter(&mockRegistrationService{}, &mockAppointmentService{})

	rec, _ := doJSON(t, router, http.MethodPost, "/diet-plan", map[string]interface{}{
		"gender":        "unknown",
		"weight":        80,
		"height":        180,
		"age":           30,
		"activityLevel": "moderate",
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// ---------- Appointments ----------

func TestBookAppointmentEndpoint(t *testing.T) {
	router := newRouter(&mockRegistrationService{}, &mockAppointmentService{})

	rec, body := doJSON(t, router, http.MethodPost, "/appointments/", map[string]string{
		"doctor":         "Khan",
		"specialization": "Weight Management",
		"date":           "2026-09-15",
		"time":           "10:30",
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	msg, _ := body["message"].(string)
	if !strings.Contains(msg, "Dr. Khan") || !strings.Contains(msg, "2026-09-15") {
		t.Errorf("message = %q, want booking confirmation with doctor and date", msg)
	}
}

func TestDeleteAppointmentEndpointNotFound(t *testing.T) {
	appt := &mockAppointmentService{deleteErr: domain.ErrNotFound}
	router := newRouter(&mockRegistrationService{}, appt)

	rec, _ := doJSON(t, router, http.MethodDelete, "/appointments/42", nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
