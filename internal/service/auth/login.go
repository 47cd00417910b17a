package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

// Login authenticates a user with username + password and issues an
// access token.
//
// Unknown username and wrong password both return the bare
// domain.ErrUnauthorized: the two paths must stay indistinguishable to
// the caller, in message and in cost. The unknown-username path runs a
// dummy bcrypt compare so it does not return measurably faster than a
// failed password check.
func (s *Service) Login(ctx context.Context, input LoginInput) (*TokenResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(input.Password))
			s.log.InfoContext(ctx, "login failed: unknown username",
				slog.String("username", input.Username))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.InfoContext(ctx, "login failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}
