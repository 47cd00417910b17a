package auth

import "github.com/topiclens/topiclens-backend/internal/domain"

// TokenResult is returned by the Login operation.
type TokenResult struct {
	AccessToken string
	TokenType   string // always "bearer"
	User        *domain.User
}
