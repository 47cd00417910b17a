package history

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

var _ repo = &repoMock{}

type repoMock struct {
	CreateFunc     func(ctx context.Context, rec *domain.SearchHistoryRecord) (*domain.SearchHistoryRecord, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryRecord, error)
	DeleteFunc     func(ctx context.Context, userID, recordID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.SearchHistoryRecord
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Delete []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			RecordID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *repoMock) Create(ctx context.Context, rec *domain.SearchHistoryRecord) (*domain.SearchHistoryRecord, error) {
	if mock.CreateFunc == nil {
		panic("repoMock.CreateFunc: method is nil but repo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx context.Context
		Rec *domain.SearchHistoryRecord
	}{ctx, rec})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *repoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("repoMock.ListByUserFunc: method is nil but repo.ListByUser was just called")
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{ctx, userID})
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *repoMock) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("repoMock.DeleteFunc: method is nil but repo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		Ctx      context.Context
		UserID   uuid.UUID
		RecordID uuid.UUID
	}{ctx, userID, recordID})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, recordID)
}
