package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/store"
)

const selectAdQuery = `SELECT id, title, description, created_at, owner_id FROM ads WHERE id = $1`

// PostgresAdStore implements the store.AdStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdStore creates a new PostgreSQL implementation of the AdStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAdStore(db store.DBTX, logger *slog.Logger) *PostgresAdStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdStore{
		db:     db,
		logger: logger.With(slog.String("component", "ad_store")),
	}
}

// Ensure PostgresAdStore implements store.AdStore interface
var _ store.AdStore = (*PostgresAdStore)(nil)

// Create implements store.AdStore.Create.
// ID and CreatedAt come back from the INSERT, so the ad needs no reload.
func (s *PostgresAdStore) Create(ctx context.Context, ad *domain.Ad) error {
	if err := ad.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO ads (title, description, owner_id) VALUES ($1, $2, $3) RETURNING id, created_at`,
		ad.Title, ad.Description, ad.OwnerID,
	).Scan(&ad.ID, &ad.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			// The token outlived its user.
			s.logger.Warn("ad owner does not exist", "owner_id", ad.OwnerID)
			return fmt.Errorf("%w: owner %d does not exist: %v", store.ErrInvalidEntity, ad.OwnerID, err)
		}
		s.logger.Error("failed to insert ad", "error", err, "owner_id", ad.OwnerID)
		return fmt.Errorf("failed to insert ad: %w", MapError(err))
	}

	ad.CreatedAt = ad.CreatedAt.UTC()
	s.logger.Debug("ad created", "ad_id", ad.ID, "owner_id", ad.OwnerID)
	return nil
}

// GetByID implements store.AdStore.GetByID
func (s *PostgresAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	return s.getOne(ctx, selectAdQuery, id)
}

// GetByIDForUpdate implements store.AdStore.GetByIDForUpdate
func (s *PostgresAdStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ad, error) {
	return s.getOne(ctx, selectAdQuery+` FOR UPDATE`, id)
}

func (s *PostgresAdStore) getOne(ctx context.Context, query string, id int64) (*domain.Ad, error) {
	var ad domain.Ad
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&ad.ID, &ad.Title, &ad.Description, &ad.CreatedAt, &ad.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAdNotFound
		}
		s.logger.Error("failed to query ad", "error", err, "ad_id", id)
		return nil, fmt.Errorf("failed to query ad: %w", MapError(err))
	}
	ad.CreatedAt = ad.CreatedAt.UTC()
	return &ad, nil
}

// Delete implements store.AdStore.Delete
func (s *PostgresAdStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete ad", "error", err, "ad_id", id)
		return fmt.Errorf("failed to delete ad: %w", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrAdNotFound); err != nil {
		return err
	}

	s.logger.Debug("ad deleted", "ad_id", id)
	return nil
}

// WithTx implements store.AdStore.WithTx
func (s *PostgresAdStore) WithTx(tx *sql.Tx) store.AdStore {
	return &PostgresAdStore{
		db:     tx,
		logger: s.logger,
	}
}
