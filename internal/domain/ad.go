package domain

import (
	"encoding/json"
	"time"
	"unicode/utf8"
)

// MaxTitleLength matches the width of the ads.title column.
const MaxTitleLength = 100

// Ad is a classified listing. It belongs to exactly one User and is never
// modified after creation, only deleted by its owner.
type Ad struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
	OwnerID     int64
}

// adJSON is the wire shape of an Ad.
type adJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	OwnerID     int64  `json:"owner_id"`
}

// NewAd creates an Ad owned by ownerID. ID and CreatedAt are left for the
// store to assign.
func NewAd(ownerID int64, title, description string) (*Ad, error) {
	ad := &Ad{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}

	if err := ad.Validate(); err != nil {
		return nil, err
	}

	return ad, nil
}

// Validate checks if the Ad has valid data.
func (a *Ad) Validate() error {
	if a.OwnerID <= 0 {
		return ErrInvalidOwner
	}

	if a.Title == "" {
		return ErrEmptyTitle
	}

	if utf8.RuneCountInString(a.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}

	if a.Description == "" {
		return ErrEmptyDescription
	}

	return nil
}

// IsOwnedBy reports whether userID owns the ad.
func (a *Ad) IsOwnedBy(userID int64) bool {
	return a.OwnerID == userID
}

// MarshalJSON renders CreatedAt as an ISO-8601 string.
func (a Ad) MarshalJSON() ([]byte, error) {
	return json.Marshal(adJSON{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339Nano),
		OwnerID:     a.OwnerID,
	})
}
