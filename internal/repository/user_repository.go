package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
)

// ErrTokenCollision is returned when an insert trips the confirmation-token
// uniqueness constraint. The registration service reissues the token and
// retries.
var ErrTokenCollision = errors.New("confirmation token already in use")

type UserRepository interface {
	// Create persists a pending user. The insert is the single atomic unit;
	// email uniqueness is enforced by the store, not by the caller's
	// pre-check.
	Create(ctx context.Context, firstName, lastName, email, passwordHash, confirmationToken string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Activate flips the user matching the token to active and clears the
	// token in one conditional update, so a token is consumable at most once.
	Activate(ctx context.Context, confirmationToken string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userCols = `id, first_name, last_name, email, password_hash, is_active, confirmation_token, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsActive, &u.ConfirmationToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, firstName, lastName, email, passwordHash, confirmationToken string) (*domain.User, error) {
	const q = `
		INSERT INTO users (first_name, last_name, email, password_hash, is_active, confirmation_token)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING ` + userCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	u, err := scanUser(r.pool.QueryRow(ctx, q, firstName, lastName, email, passwordHash, confirmationToken))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_confirmation_token_key" {
				return nil, ErrTokenCollision
			}
			return nil, domain.ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	return u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE email = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	u, err := scanUser(r.pool.QueryRow(ctx, q, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	u, err := scanUser(r.pool.QueryRow(ctx, q, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepository) Activate(ctx context.Context, confirmationToken string) (*domain.User, error) {
	const q = `
		UPDATE users
		SET is_active = true, confirmation_token = NULL, updated_at = now()
		WHERE confirmation_token = $1 AND is_active = false
		RETURNING ` + userCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	u, err := scanUser(r.pool.QueryRow(ctx, q, confirmationToken))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return u, err
}
