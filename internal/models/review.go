package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/stay-listings/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Text   string `gorm:"type:text;not null" json:"text"`
	Rating int    `gorm:"not null" json:"rating"`

	PlaceID string `gorm:"size:36;not null;index" json:"place_id"`
	Place   Place  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	UserID string `gorm:"size:36;not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview assumes place and user ids were already resolved by the caller.
func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	if strings.TrimSpace(text) == "" {
		return nil, httperr.ErrValidation("text_required", "text is required")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	if placeID == "" || userID == "" {
		return nil, httperr.ErrValidation("invalid_reference", "place and user are required")
	}

	return &Review{
		ID:      uuid.NewString(),
		Text:    text,
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	}, nil
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return httperr.ErrValidation("invalid_rating", "rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}
