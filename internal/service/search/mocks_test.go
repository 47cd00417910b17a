package search

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

var (
	_ contentSource   = &contentSourceMock{}
	_ analyzer        = &analyzerMock{}
	_ historyAppender = &historyAppenderMock{}
)

type contentSourceMock struct {
	SearchFunc func(ctx context.Context, topic string, limit int) ([]domain.FetchResult, error)

	calls struct {
		Search []struct {
			Ctx   context.Context
			Topic string
			Limit int
		}
	}
	lockSearch sync.RWMutex
}

func (mock *contentSourceMock) Search(ctx context.Context, topic string, limit int) ([]domain.FetchResult, error) {
	if mock.SearchFunc == nil {
		panic("contentSourceMock.SearchFunc: method is nil but contentSource.Search was just called")
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		Ctx   context.Context
		Topic string
		Limit int
	}{ctx, topic, limit})
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, topic, limit)
}

type analyzerMock struct {
	AnalyzeFunc func(ctx context.Context, items []domain.ContentItem) domain.AnalysisResult

	calls struct {
		Analyze []struct {
			Ctx   context.Context
			Items []domain.ContentItem
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *analyzerMock) Analyze(ctx context.Context, items []domain.ContentItem) domain.AnalysisResult {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, struct {
		Ctx   context.Context
		Items []domain.ContentItem
	}{ctx, items})
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, items)
}

type historyAppenderMock struct {
	AppendFunc func(ctx context.Context, userID uuid.UUID, topic string, results domain.SearchResults) (*domain.SearchHistoryRecord, error)

	calls struct {
		Append []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			Topic   string
			Results domain.SearchResults
		}
	}
	lockAppend sync.RWMutex
}

func (mock *historyAppenderMock) Append(ctx context.Context, userID uuid.UUID, topic string, results domain.SearchResults) (*domain.SearchHistoryRecord, error) {
	if mock.AppendFunc == nil {
		panic("historyAppenderMock.AppendFunc: method is nil but historyAppender.Append was just called")
	}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, struct {
		Ctx     context.Context
		UserID  uuid.UUID
		Topic   string
		Results domain.SearchResults
	}{ctx, userID, topic, results})
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, userID, topic, results)
}
