package postgres_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/feedback-insights/internal/adapter/postgres"
	"github.com/heartmarshall/feedback-insights/internal/adapter/postgres/testhelper"
)

func TestRunInTx_Commit(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO healthcare_user").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	tm := postgres.NewTxManager(mock)
	err = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, mock)
		_, err := q.Exec(ctx, "INSERT INTO healthcare_user (username) VALUES ($1)", "alice")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sentinel := errors.New("business logic error")
	err = postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRunInTx_BeginError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err = postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected begin error")
	}
	if called {
		t.Error("fn must not run when begin fails")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		r := recover()
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	}()

	_ = postgres.NewTxManager(mock).RunInTx(context.Background(), func(context.Context) error {
		panic("test panic")
	})
}

func TestQuerierFromCtx_NoTx(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	if q := postgres.QuerierFromCtx(context.Background(), mock); q != postgres.Querier(mock) {
		t.Error("QuerierFromCtx without tx should return the fallback")
	}
}

func TestRunInTx_Integration_Rollback(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	username := "rollback-" + testhelper.UniqueSuffix()

	sentinel := errors.New("business logic error")
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, `INSERT INTO healthcare_user (username) VALUES ($1)`, username); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	var exists bool
	if err := pool.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM healthcare_user WHERE username = $1)`, username,
	).Scan(&exists); err != nil {
		t.Fatalf("exists query: %v", err)
	}
	if exists {
		t.Fatal("expected user NOT to exist after rolled-back transaction")
	}
}
