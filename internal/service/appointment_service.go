package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
	"github.com/ehtasham11/nutritional-AI/internal/repository"
)

type AppointmentService interface {
	Book(ctx context.Context, req *domain.BookAppointmentRequest) (*domain.Appointment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{repo: repo}
}

func (s *appointmentService) Book(ctx context.Context, req *domain.BookAppointmentRequest) (*domain.Appointment, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	appointment, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) List(ctx context.Context, limit, offset int) ([]domain.Appointment, error) {
	appointments, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *appointmentService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err == pgx.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
