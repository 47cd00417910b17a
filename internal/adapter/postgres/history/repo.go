// Package history implements the search-history repository using PostgreSQL.
// Results are stored as a single JSONB document per record: history
// records are immutable and always read back whole, so there is nothing
// to gain from normalizing items into their own table.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/topiclens/topiclens-backend/internal/adapter/postgres"
	"github.com/topiclens/topiclens-backend/internal/domain"
)

// Repo provides search-history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new history record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, rec *domain.SearchHistoryRecord) (*domain.SearchHistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	results, err := json.Marshal(rec.Results)
	if err != nil {
		return nil, fmt.Errorf("marshal results: %w", err)
	}

	row := q.QueryRow(ctx,
		`INSERT INTO search_history (id, user_id, topic, results, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, topic, results, created_at`,
		rec.ID, rec.UserID, rec.Topic, results, rec.CreatedAt)

	created, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "search_history", rec.ID.String())
	}
	return created, nil
}

// ListByUser returns all history records for the given user in
// descending created_at order. The listing is unbounded; large
// histories will grow this response without limit.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SearchHistoryRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, user_id, topic, results, created_at
		 FROM search_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, postgres.MapError(err, "search_history", userID.String())
	}
	defer rows.Close()

	var records []domain.SearchHistoryRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, postgres.MapError(err, "search_history", userID.String())
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "search_history", userID.String())
	}

	return records, nil
}

// Delete removes a record owned by the given user. Scoping the DELETE
// by user_id means a caller can never delete another user's record;
// a miss for either reason is domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, userID, recordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM search_history WHERE id = $1 AND user_id = $2`,
		recordID, userID)
	if err != nil {
		return postgres.MapError(err, "search_history", recordID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("search_history %s: %w", recordID, domain.ErrNotFound)
	}

	return nil
}

func scanRecord(row pgx.Row) (*domain.SearchHistoryRecord, error) {
	var (
		rec     domain.SearchHistoryRecord
		results []byte
	)
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Topic, &results, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(results, &rec.Results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return &rec, nil
}
