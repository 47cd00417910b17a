package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/topiclens/topiclens-backend/internal/domain"
	"github.com/topiclens/topiclens-backend/pkg/ctxutil"
)

//go:generate moq -out user_resolver_mock_test.go -pkg middleware . userResolver

func TestAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	resolver := &userResolverMock{
		ResolveFunc: func(ctx context.Context, token string) (*domain.User, error) {
			if token == "valid-token" {
				return &domain.User{ID: userID, Username: "alice"}, nil
			}
			return nil, domain.ErrUnauthorized
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromCtx(r.Context())
		if !ok {
			t.Error("expected user in context")
			return
		}
		if user.ID != userID {
			t.Errorf("expected user %v, got %v", userID, user.ID)
		}
		gotUserID, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok || gotUserID != userID {
			t.Errorf("expected userID %v in context, got %v", userID, gotUserID)
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := Auth(resolver)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	resolver := &userResolverMock{
		ResolveFunc: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for invalid token")
	})

	wrapped := Auth(resolver)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuth_MissingHeaderRejected(t *testing.T) {
	resolver := &userResolverMock{
		ResolveFunc: func(ctx context.Context, token string) (*domain.User, error) {
			t.Error("Resolve should not be called when no header present")
			return nil, domain.ErrUnauthorized
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called without credentials")
	})

	wrapped := Auth(resolver)(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if len(resolver.ResolveCalls()) > 0 {
		t.Error("Resolve should not be called for anonymous request")
	}
}

// The 401 body must be byte-identical whether the header is missing,
// non-bearer, or carries a bad token.
func TestAuth_UniformRejection(t *testing.T) {
	resolver := &userResolverMock{
		ResolveFunc: func(ctx context.Context, token string) (*domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should never be called")
	})

	wrapped := Auth(resolver)(handler)

	headers := []string{"", "Basic dXNlcjpwYXNz", "Bearer ", "Bearer bad-token"}
	var bodies []string
	for _, h := range headers {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if h != "" {
			req.Header.Set("Authorization", h)
		}
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", h, http.StatusUnauthorized, rec.Code)
		}
		bodies = append(bodies, rec.Body.String())
	}
	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("rejection bodies differ: %q vs %q", bodies[0], bodies[i])
		}
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}
