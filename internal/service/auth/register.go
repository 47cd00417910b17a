package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

// Register creates a new user with username + email + password.
// Returns ErrAlreadyExists if the username or email is already taken;
// the username check runs first, so a request colliding on both fails
// on the username.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Normalize input before validation.
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Pre-checks and the insert share a transaction so the caller gets
	// a deterministic first-collision answer; the DB unique constraints
	// remain the backstop against concurrent registrations racing past
	// these reads.
	var user *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByUsername(txCtx, input.Username); err == nil {
			return fmt.Errorf("username %q: %w", input.Username, domain.ErrAlreadyExists)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check username: %w", err)
		}

		if _, err := s.users.GetByEmail(txCtx, input.Email); err == nil {
			return fmt.Errorf("email %q: %w", input.Email, domain.ErrAlreadyExists)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check email: %w", err)
		}

		created, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		user = created
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return user, nil
}
