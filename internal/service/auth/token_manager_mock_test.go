package auth

import "sync"

var _ tokenManager = &tokenManagerMock{}

type tokenManagerMock struct {
	GenerateTokenFunc func(username string) (string, error)
	ValidateTokenFunc func(token string) (string, error)

	calls struct {
		GenerateToken []struct{ Username string }
		ValidateToken []struct{ Token string }
	}
	lockGenerateToken sync.RWMutex
	lockValidateToken sync.RWMutex
}

func (mock *tokenManagerMock) GenerateToken(username string) (string, error) {
	if mock.GenerateTokenFunc == nil {
		panic("tokenManagerMock.GenerateTokenFunc: method is nil but tokenManager.GenerateToken was just called")
	}
	mock.lockGenerateToken.Lock()
	mock.calls.GenerateToken = append(mock.calls.GenerateToken, struct{ Username string }{username})
	mock.lockGenerateToken.Unlock()
	return mock.GenerateTokenFunc(username)
}

func (mock *tokenManagerMock) ValidateToken(token string) (string, error) {
	if mock.ValidateTokenFunc == nil {
		panic("tokenManagerMock.ValidateTokenFunc: method is nil but tokenManager.ValidateToken was just called")
	}
	mock.lockValidateToken.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, struct{ Token string }{token})
	mock.lockValidateToken.Unlock()
	return mock.ValidateTokenFunc(token)
}
