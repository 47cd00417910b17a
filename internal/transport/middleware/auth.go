package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/topiclens/topiclens-backend/internal/domain"
	"github.com/topiclens/topiclens-backend/pkg/ctxutil"
)

type ctxKey string

const userKey ctxKey = "user"

// userResolver resolves a bearer token to the user it belongs to.
type userResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth returns middleware that requires a valid bearer token. Missing,
// malformed, and invalid tokens all produce the identical 401 response,
// so the reply reveals nothing about which check failed.
func Auth(resolver userResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			user, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	ctx = ctxutil.WithUserID(ctx, user.ID)
	return context.WithValue(ctx, userKey, user)
}

// UserFromCtx returns the authenticated user stored by Auth.
func UserFromCtx(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
