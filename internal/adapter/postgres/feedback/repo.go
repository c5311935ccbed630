// Package feedback implements the feedback repository using PostgreSQL.
// Title and body are stored encrypted, each with its own nonce.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/feedback-insights/internal/adapter/postgres"
	"github.com/heartmarshall/feedback-insights/internal/domain"
)

type sealer interface {
	Seal(plaintext string) (ciphertext, nonce []byte, err error)
	Open(ciphertext, nonce []byte) (string, error)
}

var columns = []string{
	"f.id::text", "u.id::text", "u.username",
	"f.title", "f.title_nonce", "f.body", "f.body_nonce",
	"f.created", "f.updated",
}

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	box sealer
}

// New creates a new feedback repository.
func New(db postgres.Querier, box sealer) *Repo {
	return &Repo{db: db, box: box}
}

func selectFeedback() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From("healthcare_feedback f").
		Join("healthcare_user u ON u.id = f.user_id")
}

// Create inserts f for the user f.User.ID and returns the stored record.
// The returned Feedback has no insight.
func (r *Repo) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	title, titleNonce, err := r.box.Seal(f.Title)
	if err != nil {
		return nil, fmt.Errorf("feedback: seal title: %w", err)
	}
	body, bodyNonce, err := r.box.Seal(f.Body)
	if err != nil {
		return nil, fmt.Errorf("feedback: seal body: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("healthcare_feedback").
		Columns("user_id", "title", "title_nonce", "body", "body_nonce", "created", "updated").
		Values(f.User.ID, title, titleNonce, body, bodyNonce, f.Created, f.Updated).
		Suffix("RETURNING id::text").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback", f.User.Username)
	}

	var id string
	q := postgres.QuerierFromCtx(ctx, r.db)
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "feedback", f.User.Username)
	}

	out := *f
	out.ID = id
	out.Insight = nil
	return &out, nil
}

// GetByID returns one feedback record without its insight.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	query, args, err := selectFeedback().
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback", id)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	f, err := r.scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "feedback", id)
	}
	return &f, nil
}

// ListByUsername returns the user's feedback, newest first.
// An unknown username yields an empty list.
func (r *Repo) ListByUsername(ctx context.Context, username string) ([]domain.Feedback, error) {
	query, args, err := selectFeedback().
		Where(squirrel.Eq{"u.username": username}).
		OrderBy("f.created DESC", "f.id").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback", username)
	}
	list, err := r.list(ctx, query, args)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", username)
	}
	return list, nil
}

// ListWithoutInsight returns up to limit records that have no insight yet
// and fewer than maxAttempts failed generations. Records with fewer
// failures come first, then the oldest.
func (r *Repo) ListWithoutInsight(ctx context.Context, limit, maxAttempts int) ([]domain.Feedback, error) {
	query, args, err := selectFeedback().
		LeftJoin("healthcare_insight i ON i.feedback_id = f.id").
		LeftJoin("healthcare_insight_attempt a ON a.feedback_id = f.id").
		Where(squirrel.Eq{"i.id": nil}).
		Where("COALESCE(a.attempts, 0) < ?", maxAttempts).
		OrderBy("COALESCE(a.attempts, 0) ASC", "f.created ASC", "f.id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "feedback", "without insight")
	}
	list, err := r.list(ctx, query, args)
	if err != nil {
		return nil, postgres.MapError(err, "feedback", "without insight")
	}
	return list, nil
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.Feedback, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Feedback{}
	for rows.Next() {
		f, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repo) scan(row pgx.Row) (domain.Feedback, error) {
	var (
		f                 domain.Feedback
		title, titleNonce []byte
		body, bodyNonce   []byte
		created, updated  time.Time
	)
	if err := row.Scan(
		&f.ID, &f.User.ID, &f.User.Username,
		&title, &titleNonce, &body, &bodyNonce,
		&created, &updated,
	); err != nil {
		return domain.Feedback{}, err
	}

	var err error
	if f.Title, err = r.box.Open(title, titleNonce); err != nil {
		return domain.Feedback{}, fmt.Errorf("open title of %s: %w", f.ID, err)
	}
	if f.Body, err = r.box.Open(body, bodyNonce); err != nil {
		return domain.Feedback{}, fmt.Errorf("open body of %s: %w", f.ID, err)
	}
	f.Created = created.UTC()
	f.Updated = updated.UTC()
	return f, nil
}
