package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
)

type AppointmentRepository interface {
	Create(ctx context.Context, req *domain.BookAppointmentRequest) (*domain.Appointment, error)
	List(ctx context.Context, limit, offset int) ([]domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentCols = `id, doctor, specialization, date, time, created_at`

func (r *appointmentRepository) Create(ctx context.Context, req *domain.BookAppointmentRequest) (*domain.Appointment, error) {
	const q = `
		INSERT INTO appointments (doctor, specialization, date, time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + appointmentCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a domain.Appointment
	err := r.pool.QueryRow(ctx, q, req.Doctor, req.Specialization, req.Date, req.Time).Scan(
		&a.ID, &a.Doctor, &a.Specialization, &a.Date, &a.Time, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *appointmentRepository) List(ctx context.Context, limit, offset int) ([]domain.Appointment, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	const q = `
		SELECT ` + appointmentCols + `
		FROM appointments
		ORDER BY date, time
		LIMIT $1 OFFSET $2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.Doctor, &a.Specialization, &a.Date, &a.Time, &a.CreatedAt); err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}

	return appointments, rows.Err()
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM appointments WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
