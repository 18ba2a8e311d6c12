package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adColumns = []string{"id", "title", "description", "created_at", "owner_id"}

func TestPostgresAdStore_Create(t *testing.T) {
	t.Parallel()

	insert := regexp.QuoteMeta(`INSERT INTO ads (title, description, owner_id) VALUES ($1, $2, $3) RETURNING id, created_at`)

	t.Run("fills id and created_at", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
		mock.ExpectQuery(insert).
			WithArgs("Bike", "Red", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), created))

		ad := &domain.Ad{Title: "Bike", Description: "Red", OwnerID: 1}
		err := NewPostgresAdStore(db, nil).Create(context.Background(), ad)

		require.NoError(t, err)
		assert.Equal(t, int64(5), ad.ID)
		assert.True(t, ad.CreatedAt.Equal(created))
		assert.Equal(t, time.UTC, ad.CreatedAt.Location())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)
		mock.ExpectQuery(insert).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "ads_owner_id_fkey"})

		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))

		ad := &domain.Ad{Title: "Bike", Description: "Red", OwnerID: 99}
		err := NewPostgresAdStore(db, logger).Create(context.Background(), ad)

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "owner 99 does not exist")
		assert.Contains(t, logs.String(), `"level":"WARN"`)
		assert.Contains(t, logs.String(), "ad owner does not exist")
		assert.NotContains(t, logs.String(), "failed to insert ad")
	})

	t.Run("invalid ad never reaches the database", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)

		err := NewPostgresAdStore(db, nil).Create(context.Background(), &domain.Ad{OwnerID: 1})

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresAdStore_GetByID(t *testing.T) {
	t.Parallel()

	query := regexp.QuoteMeta(selectAdQuery)

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mock.ExpectQuery(query).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(adColumns).AddRow(int64(5), "Bike", "Red", created, int64(1)))

		ad, err := NewPostgresAdStore(db, nil).GetByID(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, &domain.Ad{ID: 5, Title: "Bike", Description: "Red", CreatedAt: created, OwnerID: 1}, ad)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)
		mock.ExpectQuery(query).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)

		ad, err := NewPostgresAdStore(db, nil).GetByID(context.Background(), 999)

		assert.Nil(t, ad)
		assert.ErrorIs(t, err, store.ErrAdNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresAdStore_GetByIDForUpdate(t *testing.T) {
	t.Parallel()
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectAdQuery + ` FOR UPDATE`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(adColumns).AddRow(int64(5), "Bike", "Red", time.Now(), int64(1)))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		ad, err := NewPostgresAdStore(db, nil).WithTx(tx).GetByIDForUpdate(ctx, 5)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(1), ad.OwnerID)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAdStore_Delete(t *testing.T) {
	t.Parallel()

	del := regexp.QuoteMeta(`DELETE FROM ads WHERE id = $1`)

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)
		mock.ExpectExec(del).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgresAdStore(db, nil).Delete(context.Background(), 5)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		db, mock := newMock(t)
		mock.ExpectExec(del).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewPostgresAdStore(db, nil).Delete(context.Background(), 5)

		assert.ErrorIs(t, err, store.ErrAdNotFound)
	})
}
