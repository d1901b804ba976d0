package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/stay-listings/internal/httperr"
)

const maxTitleLen = 100

type Place struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`

	OwnerID string `gorm:"size:36;not null;index" json:"owner_id"`
	Owner   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Amenities []Amenity `gorm:"many2many:place_amenities" json:"-"`
	Reviews   []Review  `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlace builds a listing for an already-resolved owner. Titles over
// the limit are truncated rather than rejected; names on User and
// Amenity reject instead.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	if ownerID == "" {
		return nil, httperr.ErrValidation("owner_required", "owner is required")
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if err := ValidateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	title = TruncateTitle(title)

	return &Place{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
	}, nil
}

// TruncateTitle applies the same silent truncation on update paths.
// The limit counts runes, so multibyte titles are never cut mid-rune.
func TruncateTitle(title string) string {
	if utf8.RuneCountInString(title) > maxTitleLen {
		return string([]rune(title)[:maxTitleLen])
	}
	return title
}

func ValidatePrice(price float64) error {
	if price < 0 {
		return httperr.ErrValidation("invalid_price", "price must not be negative")
	}
	return nil
}

func ValidateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return httperr.ErrValidation("invalid_latitude", "latitude must be between -90 and 90")
	}
	if longitude < -180 || longitude > 180 {
		return httperr.ErrValidation("invalid_longitude", "longitude must be between -180 and 180")
	}
	return nil
}
