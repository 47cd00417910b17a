// Package auth implements credential registration, password login, and
// bearer-token resolution.
package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/topiclens/topiclens-backend/internal/config"
	"github.com/topiclens/topiclens-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenManager defines the token management interface needed by auth service.
type tokenManager interface {
	GenerateToken(username string) (string, error)
	ValidateToken(token string) (string, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   tokenManager
	tx    txManager
	cfg   config.AuthConfig

	// dummyHash is compared against when a login names an unknown
	// user, so that the unknown-user and wrong-password paths cost
	// the same. Without it, response timing becomes a username oracle.
	dummyHash []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt tokenManager,
	tx txManager,
	cfg config.AuthConfig,
) (*Service, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("topiclens-dummy-password"), cfg.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		jwt:       jwt,
		tx:        tx,
		cfg:       cfg,
		dummyHash: dummy,
	}, nil
}
