// Package user implements the healthcare user repository using PostgreSQL.
package user

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/feedback-insights/internal/adapter/postgres"
	"github.com/heartmarshall/feedback-insights/internal/domain"
)

const table = "healthcare_user"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetOrCreate returns the user with the given username, inserting it first
// when it does not exist yet.
func (r *Repo) GetOrCreate(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert, args, err := postgres.Builder().
		Insert(table).
		Columns("username").
		Values(username).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	if _, err := q.Exec(ctx, insert, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	return r.GetByUsername(ctx, username)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("id::text", "username").
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	var u domain.User
	if err := q.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Username); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return &u, nil
}
