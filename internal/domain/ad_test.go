package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ownerID     int64
		title       string
		description string
		wantErr     error
	}{
		{name: "valid", ownerID: 1, title: "T", description: "D"},
		{name: "title at limit", ownerID: 1, title: strings.Repeat("t", MaxTitleLength), description: "D"},
		{name: "multibyte title at limit", ownerID: 1, title: strings.Repeat("ж", MaxTitleLength), description: "D"},
		{name: "title too long", ownerID: 1, title: strings.Repeat("t", MaxTitleLength+1), description: "D", wantErr: ErrTitleTooLong},
		{name: "empty title", ownerID: 1, title: "", description: "D", wantErr: ErrEmptyTitle},
		{name: "empty description", ownerID: 1, title: "T", description: "", wantErr: ErrEmptyDescription},
		{name: "zero owner", ownerID: 0, title: "T", description: "D", wantErr: ErrInvalidOwner},
		{name: "negative owner", ownerID: -3, title: "T", description: "D", wantErr: ErrInvalidOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ad, err := NewAd(tt.ownerID, tt.title, tt.description)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Nil(t, ad)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ownerID, ad.OwnerID)
			assert.Equal(t, tt.title, ad.Title)
			assert.Equal(t, tt.description, ad.Description)
			assert.Zero(t, ad.ID)
			assert.True(t, ad.CreatedAt.IsZero())
		})
	}
}

func TestAdIsOwnedBy(t *testing.T) {
	t.Parallel()

	ad := &Ad{ID: 3, OwnerID: 1}
	assert.True(t, ad.IsOwnedBy(1))
	assert.False(t, ad.IsOwnedBy(2))
}

func TestAdMarshalJSON(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 3, 14, 15, 9, 26, 535000000, time.UTC)
	ad := &Ad{ID: 42, Title: "Bike", Description: "Red, barely used", CreatedAt: createdAt, OwnerID: 7}

	data, err := json.Marshal(ad)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 42,
		"title": "Bike",
		"description": "Red, barely used",
		"created_at": "2025-03-14T15:09:26.535Z",
		"owner_id": 7
	}`, string(data))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	parsed, err := time.Parse(time.RFC3339Nano, decoded["created_at"].(string))
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(parsed))
}
