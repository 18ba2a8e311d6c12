package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/classifieds-api/internal/domain"
)

// AdStore defines the interface for ad data persistence.
type AdStore interface {
	// Create saves a new ad and fills in the store-assigned ID and CreatedAt.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, ad *domain.Ad) error

	// GetByID retrieves an ad by its ID.
	// Returns ErrAdNotFound if the ad does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Ad, error)

	// GetByIDForUpdate is GetByID that also locks the row until the
	// surrounding transaction ends. Only meaningful on a store from WithTx.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Ad, error)

	// Delete removes an ad by its ID.
	// Returns ErrAdNotFound if the ad does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns an AdStore that runs its queries on tx.
	WithTx(tx *sql.Tx) AdStore
}
