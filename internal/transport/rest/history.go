package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/topiclens/topiclens-backend/internal/domain"
	"github.com/topiclens/topiclens-backend/internal/transport/middleware"
)

// historyService defines the minimal interface needed by HistoryHandler.
type historyService interface {
	Append(ctx context.Context, userID uuid.UUID, topic string, results domain.SearchResults) (*domain.SearchHistoryRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryRecord, error)
	Delete(ctx context.Context, userID, recordID uuid.UUID) error
}

// HistoryHandler serves search-history REST endpoints.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

type appendRequest struct {
	Topic   string               `json:"topic"`
	Results domain.SearchResults `json:"results"`
}

type recordResponse struct {
	ID        string               `json:"id"`
	Topic     string               `json:"topic"`
	Results   domain.SearchResults `json:"results"`
	CreatedAt time.Time            `json:"created_at"`
}

func toRecordResponse(rec *domain.SearchHistoryRecord) recordResponse {
	return recordResponse{
		ID:        rec.ID.String(),
		Topic:     rec.Topic,
		Results:   rec.Results,
		CreatedAt: rec.CreatedAt,
	}
}

// List handles GET /auth/me/history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	records, err := h.svc.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]recordResponse, 0, len(records))
	for i := range records {
		out = append(out, toRecordResponse(&records[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

// Append handles POST /auth/me/history.
func (h *HistoryHandler) Append(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req appendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Append(r.Context(), user.ID, req.Topic, req.Results)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Delete handles DELETE /auth/me/history/{id}. An id that is not a
// UUID, does not exist, or belongs to another user is a uniform 404.
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	recordID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, recordID); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
