package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ehtasham11/nutritional-AI/internal/domain"
	"github.com/ehtasham11/nutritional-AI/internal/password"
	"github.com/ehtasham11/nutritional-AI/internal/repository"
	"github.com/ehtasham11/nutritional-AI/internal/token"
	"github.com/ehtasham11/nutritional-AI/pkg/events"
	"github.com/ehtasham11/nutritional-AI/pkg/logger"
)

// tokenIssueAttempts bounds retries when an issued token collides with a live
// one in the store. A collision is cryptographically negligible, so one retry
// would already be generous.
const tokenIssueAttempts = 3

type RegistrationService interface {
	// Register validates the request, persists a pending user and queues the
	// confirmation email. The email job runs detached; Register returns as
	// soon as the insert commits.
	Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.User, error)
	// Confirm consumes a confirmation token and activates the matching
	// account. A consumed, unknown or already-active token yields
	// domain.ErrInvalidToken.
	Confirm(ctx context.Context, confirmationToken string) (*domain.User, error)
	// ResendConfirmation re-queues the confirmation email for a pending
	// account. It never reveals whether the email is registered.
	ResendConfirmation(ctx context.Context, email string) error
}

type registrationService struct {
	userRepo  repository.UserRepository
	publisher events.Publisher
}

func NewRegistrationService(
	userRepo repository.UserRepository,
	publisher events.Publisher,
) RegistrationService {
	return &registrationService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

func (s *registrationService) Register(ctx context.Context, req *domain.RegistrationRequest) (*domain.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// The check order is part of the contract: duplicate email wins over a
	// weak password, which wins over a mismatched confirmation.
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyRegistered
	}

	if !password.IsStrong(req.Password) {
		return nil, domain.ErrWeakPassword
	}

	if req.Password != req.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	passwordHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, confirmationToken, err := s.createPendingUser(ctx, req, passwordHash)
	if err != nil {
		return nil, err
	}

	// Detached mail dispatch: the registration response does not wait for,
	// and does not depend on, the email job.
	s.queueConfirmationEmail(ctx, user.Email, user.FirstName, confirmationToken)

	if err := s.publisher.Publish(ctx, events.UserRegistered, events.UserRegisteredEvent{
		UserID:       user.ID,
		Email:        user.Email,
		RegisteredAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish registration event", "error", err, "user_id", user.ID)
	}

	return user, nil
}

// createPendingUser issues a token and inserts the user, reissuing on the
// off-chance the token collides with a live one. The store's unique
// constraints are the real enforcement; the FindByEmail pre-check above is a
// UX nicety on a racy read.
func (s *registrationService) createPendingUser(ctx context.Context, req *domain.RegistrationRequest, passwordHash string) (*domain.User, string, error) {
	for attempt := 0; attempt < tokenIssueAttempts; attempt++ {
		confirmationToken, err := token.Issue()
		if err != nil {
			return nil, "", fmt.Errorf("failed to issue confirmation token: %w", err)
		}

		user, err := s.userRepo.Create(ctx, req.FirstName, req.LastName, req.Email, passwordHash, confirmationToken)
		if err == repository.ErrTokenCollision {
			logger.WarnContext(ctx, "Confirmation token collision, reissuing", "attempt", attempt+1)
			continue
		}
		if err != nil {
			if err == domain.ErrEmailAlreadyRegistered {
				return nil, "", err
			}
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
		return user, confirmationToken, nil
	}
	return nil, "", fmt.Errorf("failed to issue a unique confirmation token after %d attempts", tokenIssueAttempts)
}

func (s *registrationService) Confirm(ctx context.Context, confirmationToken string) (*domain.User, error) {
	if confirmationToken == "" {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.userRepo.Activate(ctx, confirmationToken)
	if err != nil {
		return nil, fmt.Errorf("failed to activate user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidToken
	}

	if err := s.publisher.Publish(ctx, events.UserConfirmed, events.UserConfirmedEvent{
		UserID:      user.ID,
		Email:       user.Email,
		ConfirmedAt: time.Now(),
	}); err != nil {
		logger.WarnContext(ctx, "Failed to publish confirmation event", "error", err, "user_id", user.ID)
	}

	return user, nil
}

func (s *registrationService) ResendConfirmation(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || !user.Pending() {
		// Same outcome for unknown and already-active accounts.
		return nil
	}

	s.queueConfirmationEmail(ctx, user.Email, user.FirstName, *user.ConfirmationToken)
	return nil
}

func (s *registrationService) queueConfirmationEmail(ctx context.Context, email, firstName, confirmationToken string) {
	job := events.ConfirmationEmailJob{
		Email:     email,
		FirstName: firstName,
		Token:     confirmationToken,
		QueuedAt:  time.Now(),
	}

	// A failed enqueue is terminal for the job; the committed user record is
	// never rolled back over it.
	if err := s.publisher.Publish(ctx, events.NotifyConfirmationEmail, job); err != nil {
		logger.ErrorContext(ctx, "Failed to queue confirmation email", "error", err, "email", email)
	}
}

// ConfirmationURL builds the link embedded in the confirmation email.
func ConfirmationURL(baseURL, confirmationToken string) string {
	return fmt.Sprintf("%s/confirm-email/%s", baseURL, confirmationToken)
}
