package middleware

import (
	"context"
	"sync"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

var _ userResolver = &userResolverMock{}

type userResolverMock struct {
	ResolveFunc func(ctx context.Context, token string) (*domain.User, error)

	calls struct {
		Resolve []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *userResolverMock) Resolve(ctx context.Context, token string) (*domain.User, error) {
	if mock.ResolveFunc == nil {
		panic("userResolverMock.ResolveFunc: method is nil but userResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, token)
}

func (mock *userResolverMock) ResolveCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
