// Package insight implements the insight repository using PostgreSQL.
package insight

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/feedback-insights/internal/adapter/postgres"
	"github.com/heartmarshall/feedback-insights/internal/domain"
)

const (
	table        = "healthcare_insight"
	attemptTable = "healthcare_insight_attempt"
)

// Repo provides insight persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new insight repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create stores the insight of one feedback record. A second insight for
// the same record fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, feedbackID string, in *domain.Insight) error {
	topics := in.KeyTopics
	if topics == nil {
		topics = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("feedback_id", "sentiment", "key_topics", "action_required", "summary", "tokens", "latency").
		Values(feedbackID, in.Sentiment.String(), topics, in.ActionRequired, in.Summary, in.Tokens, in.Latency).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "insight", feedbackID)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insight", feedbackID)
	}
	return nil
}

// RecordFailure counts one failed generation for the record and keeps the
// latest reason.
func (r *Repo) RecordFailure(ctx context.Context, feedbackID, reason string) error {
	query, args, err := postgres.Builder().
		Insert(attemptTable).
		Columns("feedback_id", "last_error").
		Values(feedbackID, reason).
		Suffix("ON CONFLICT (feedback_id) DO UPDATE SET " +
			"attempts = " + attemptTable + ".attempts + 1, " +
			"last_error = EXCLUDED.last_error, " +
			"last_attempt_at = now()").
		ToSql()
	if err != nil {
		return postgres.MapError(err, "insight attempt", feedbackID)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "insight attempt", feedbackID)
	}
	return nil
}

// ListByFeedbackIDs returns the insights of the given records keyed by
// feedback ID. Records without an insight are absent from the map.
func (r *Repo) ListByFeedbackIDs(ctx context.Context, ids []string) (map[string]*domain.Insight, error) {
	out := make(map[string]*domain.Insight, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	uids := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("insight: feedback id %q: %w", id, domain.ErrValidation)
		}
		uids[i] = u
	}

	query, args, err := postgres.Builder().
		Select("feedback_id::text", "sentiment", "key_topics", "action_required", "summary", "tokens", "latency").
		From(table).
		Where("feedback_id = ANY(?)", uids).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "insight", "batch")
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "insight", "batch")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			feedbackID string
			sentiment  string
			in         domain.Insight
		)
		if err := rows.Scan(&feedbackID, &sentiment, &in.KeyTopics, &in.ActionRequired,
			&in.Summary, &in.Tokens, &in.Latency); err != nil {
			return nil, postgres.MapError(err, "insight", "batch")
		}
		in.Sentiment = domain.Sentiment(sentiment)
		out[feedbackID] = &in
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "insight", "batch")
	}
	return out, nil
}
