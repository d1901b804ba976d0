package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/stay-listings/internal/httperr"
)

type Amenity struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAmenity(name string) (*Amenity, error) {
	if err := ValidateAmenityName(name); err != nil {
		return nil, err
	}
	return &Amenity{
		ID:   uuid.NewString(),
		Name: name,
	}, nil
}

func ValidateAmenityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return httperr.ErrValidation("name_required", "name must be a non-empty string")
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return httperr.ErrValidation("name_too_long", "name must be %d characters or fewer", maxNameLen)
	}
	return nil
}
