// Package search orchestrates the search-and-analyze pipeline: fetch
// posts for a topic, analyze them, and persist the combined result to
// the user's history.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/topiclens/topiclens-backend/internal/config"
	"github.com/topiclens/topiclens-backend/internal/domain"
)

// contentSource defines the content fetching interface needed by the
// orchestrator.
type contentSource interface {
	Search(ctx context.Context, topic string, limit int) ([]domain.FetchResult, error)
}

// analyzer defines the analysis interface needed by the orchestrator.
// Analyze is total: any provider failure surfaces as the safe default
// result, never as an error.
type analyzer interface {
	Analyze(ctx context.Context, items []domain.ContentItem) domain.AnalysisResult
}

// historyAppender defines the history persistence interface needed by
// the orchestrator.
type historyAppender interface {
	Append(ctx context.Context, userID uuid.UUID, topic string, results domain.SearchResults) (*domain.SearchHistoryRecord, error)
}

// Service implements the search pipeline.
type Service struct {
	log      *slog.Logger
	source   contentSource
	analyzer analyzer
	history  historyAppender

	defaultLimit int
	maxLimit     int
}

// NewService creates a new search service instance.
func NewService(
	logger *slog.Logger,
	source contentSource,
	analyzer analyzer,
	history historyAppender,
	cfg config.SearchConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "search"),
		source:       source,
		analyzer:     analyzer,
		history:      history,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
	}
}

// Search runs the full pipeline for the given user and topic. Posts
// that fail to decode are logged and dropped; a fetch-level failure
// aborts with domain.ErrUpstream. The result is persisted to the
// user's history before it is returned, so a successful response
// implies a durable record.
func (s *Service) Search(ctx context.Context, user *domain.User, topic string, limit int) (*domain.SearchResults, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.NewValidationError("topic", "required")
	}

	limit = s.capLimit(limit)

	fetched, err := s.source.Search(ctx, topic, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}

	items := make([]domain.ContentItem, 0, len(fetched))
	dropped := 0
	for _, fr := range fetched {
		if fr.Err != nil {
			dropped++
			s.log.WarnContext(ctx, "dropping undecodable post",
				slog.String("topic", topic), slog.String("error", fr.Err.Error()))
			continue
		}
		items = append(items, fr.Item)
	}

	s.log.InfoContext(ctx, "content fetched",
		slog.String("topic", topic),
		slog.Int("items", len(items)), slog.Int("dropped", dropped))

	analysis := s.analyzer.Analyze(ctx, items)

	results := domain.SearchResults{Items: items, Analysis: analysis}

	if _, err := s.history.Append(ctx, user.ID, topic, results); err != nil {
		return nil, fmt.Errorf("persist search: %w", err)
	}

	return &results, nil
}

// capLimit applies the configured default and ceiling to a client
// supplied limit.
func (s *Service) capLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}
