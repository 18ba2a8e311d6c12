package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/classifieds-api/internal/domain"
	"github.com/phrazzld/classifieds-api/internal/store"
)

// AdService provides the ad use cases.
type AdService interface {
	// Create stores a new ad owned by ownerID and returns it with its ID and
	// creation time filled in. Invalid input returns a domain.ErrValidation error.
	Create(ctx context.Context, ownerID int64, title, description string) (*domain.Ad, error)

	// Get returns the ad with the given ID, or ErrAdNotFound.
	Get(ctx context.Context, id int64) (*domain.Ad, error)

	// Delete removes adID if callerID owns it.
	// Returns ErrAdNotFound or ErrAdNotOwned; the ad is untouched in both cases.
	Delete(ctx context.Context, callerID, adID int64) error
}

// AdServiceImpl implements the AdService interface
type AdServiceImpl struct {
	adStore    store.AdStore
	transactor store.Transactor
	logger     *slog.Logger
}

var _ AdService = (*AdServiceImpl)(nil)

// NewAdService creates a new AdService
func NewAdService(adStore store.AdStore, transactor store.Transactor, logger *slog.Logger) *AdServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdServiceImpl{
		adStore:    adStore,
		transactor: transactor,
		logger:     logger.With("component", "ad_service"),
	}
}

// Create implements AdService.
func (s *AdServiceImpl) Create(ctx context.Context, ownerID int64, title, description string) (*domain.Ad, error) {
	ad, err := domain.NewAd(ownerID, title, description)
	if err != nil {
		return nil, fmt.Errorf("invalid ad: %w", err)
	}

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return s.adStore.WithTx(tx).Create(ctx, ad)
	})
	if err != nil {
		s.logger.Error("failed to create ad", "error", err, "owner_id", ownerID)
		return nil, NewServiceError("ad", "create", err)
	}

	s.logger.Info("ad created", "ad_id", ad.ID, "owner_id", ownerID)
	return ad, nil
}

// Get implements AdService.
func (s *AdServiceImpl) Get(ctx context.Context, id int64) (*domain.Ad, error) {
	ad, err := s.adStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrAdNotFound) {
			return nil, ErrAdNotFound
		}
		s.logger.Error("failed to get ad", "error", err, "ad_id", id)
		return nil, NewServiceError("ad", "get", err)
	}
	return ad, nil
}

// Delete implements AdService. The ownership check and the delete share one
// transaction, with the row locked between them.
func (s *AdServiceImpl) Delete(ctx context.Context, callerID, adID int64) error {
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.adStore.WithTx(tx)

		ad, err := txStore.GetByIDForUpdate(ctx, adID)
		if err != nil {
			if errors.Is(err, store.ErrAdNotFound) {
				return ErrAdNotFound
			}
			return err
		}

		if !ad.IsOwnedBy(callerID) {
			return ErrAdNotOwned
		}

		if err := txStore.Delete(ctx, adID); err != nil {
			if errors.Is(err, store.ErrAdNotFound) {
				return ErrAdNotFound
			}
			return err
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("ad deleted", "ad_id", adID, "user_id", callerID)
		return nil
	case errors.Is(err, ErrAdNotFound):
		return ErrAdNotFound
	case errors.Is(err, ErrAdNotOwned):
		s.logger.Debug("delete refused for non-owner", "ad_id", adID, "user_id", callerID)
		return ErrAdNotOwned
	default:
		s.logger.Error("failed to delete ad", "error", err, "ad_id", adID, "user_id", callerID)
		return NewServiceError("ad", "delete", err)
	}
}
