//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/platform/postgres"
	"github.com/phrazzld/classifieds-api/internal/store"
	"github.com/phrazzld/classifieds-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func createUser(t *testing.T, tx *sql.Tx, email string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, HashedPassword: "$2a$04$integrationhash"}
	require.NoError(t, postgres.NewPostgresUserStore(tx, quiet).Create(context.Background(), user))
	require.Positive(t, user.ID)
	return user
}

func TestIntegration_UserStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, quiet)
		created := createUser(t, tx, "integration-user@x.io")

		byEmail, err := users.GetByEmail(ctx, "integration-user@x.io")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byEmail.ID)
		assert.Equal(t, created.HashedPassword, byEmail.HashedPassword)

		_, err = users.GetByEmail(ctx, "missing@x.io")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		createUser(t, tx, "dup@x.io")

		err := postgres.NewPostgresUserStore(tx, quiet).Create(ctx, &domain.User{Email: "dup@x.io", HashedPassword: "h"})
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})
}

func TestIntegration_AdStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		owner := createUser(t, tx, "integration-owner@x.io")
		ads := postgres.NewPostgresAdStore(tx, quiet)

		ad := &domain.Ad{Title: "Bike", Description: "Red", OwnerID: owner.ID}
		require.NoError(t, ads.Create(ctx, ad))
		assert.Positive(t, ad.ID)
		assert.WithinDuration(t, time.Now(), ad.CreatedAt, time.Minute)
		assert.Equal(t, time.UTC, ad.CreatedAt.Location())

		got, err := ads.GetByIDForUpdate(ctx, ad.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bike", got.Title)
		assert.Equal(t, owner.ID, got.OwnerID)

		require.NoError(t, ads.Delete(ctx, ad.ID))
		_, err = ads.GetByID(ctx, ad.ID)
		assert.ErrorIs(t, err, store.ErrAdNotFound)
		assert.ErrorIs(t, ads.Delete(ctx, ad.ID), store.ErrAdNotFound)
	})

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		err := postgres.NewPostgresAdStore(tx, quiet).Create(ctx, &domain.Ad{Title: "Orphan", Description: "x", OwnerID: 1 << 40})
		assert.ErrorIs(t, err, store.ErrInvalidEntity, "unknown owner violates the foreign key")
	})
}

func TestIntegration_HealthChecker(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	ok, err := postgres.NewPostgresHealthChecker(db).CheckConnection(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
}
