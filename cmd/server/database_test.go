package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWaitForDatabase_RetriesUntilPingSucceeds(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	mock.ExpectPing()

	err = waitForDatabase(context.Background(), db, 5*time.Second, discardLogger())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_GivesUpAfterTimeout(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	refused := errors.New("dial tcp 10.1.2.3:5432: connect: connection refused")
	db := pingerFunc(func(ctx context.Context) error {
		attempts.Add(1)
		return refused
	})

	start := time.Now()
	err := waitForDatabase(context.Background(), db, 300*time.Millisecond, discardLogger())

	require.Error(t, err)
	assert.ErrorIs(t, err, refused)
	assert.Contains(t, err.Error(), "database not reachable")
	assert.Greater(t, attempts.Load(), int32(1), "should retry before giving up")
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestWaitForDatabase_StopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	db := pingerFunc(func(context.Context) error {
		cancel()
		return errors.New("not yet")
	})

	err := waitForDatabase(ctx, db, time.Minute, discardLogger())

	require.Error(t, err)
}
