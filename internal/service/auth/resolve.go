package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

// Resolve converts a bearer token into the authenticated user.
//
// Every failure branch (malformed or expired token, missing subject,
// user absent, even a store error during lookup) returns the bare
// domain.ErrUnauthorized. The branches are only distinguished in
// server-side logs; callers and clients see one uniform outcome.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.jwt.ValidateToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "resolve failed: invalid token",
			slog.String("error", err.Error()))
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "resolve failed: token subject has no user",
				slog.String("username", username))
		} else {
			s.log.ErrorContext(ctx, "resolve failed: user lookup",
				slog.String("username", username),
				slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	return user, nil
}
