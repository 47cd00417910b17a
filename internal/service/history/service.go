// Package history manages per-user search history records.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/topiclens/topiclens-backend/internal/domain"
)

const maxTopicLength = 256

// repo defines the history repository interface needed by the service.
type repo interface {
	Create(ctx context.Context, rec *domain.SearchHistoryRecord) (*domain.SearchHistoryRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

// Service implements history operations.
type Service struct {
	log     *slog.Logger
	records repo
}

// NewService creates a new history service instance.
func NewService(logger *slog.Logger, records repo) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		records: records,
	}
}

// Append stores a completed search under the given user, assigning the
// record id and timestamp.
func (s *Service) Append(ctx context.Context, userID uuid.UUID, topic string, results domain.SearchResults) (*domain.SearchHistoryRecord, error) {
	topic = strings.TrimSpace(topic)
	switch {
	case topic == "":
		return nil, domain.NewValidationError("topic", "required")
	case len(topic) > maxTopicLength:
		return nil, domain.NewValidationError("topic", "too long (max 256)")
	}

	rec := &domain.SearchHistoryRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Topic:     topic,
		Results:   results,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}

	s.log.DebugContext(ctx, "history record appended",
		slog.String("record_id", created.ID.String()),
		slog.String("topic", created.Topic))

	return created, nil
}

// ListByUser returns the user's records, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryRecord, error) {
	records, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Delete removes one of the user's own records. A record id that does
// not exist or belongs to another user yields domain.ErrNotFound.
func (s *Service) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	if err := s.records.Delete(ctx, userID, recordID); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}

	s.log.DebugContext(ctx, "history record deleted",
		slog.String("record_id", recordID.String()))

	return nil
}
