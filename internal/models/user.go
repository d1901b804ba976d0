package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/validators"
)

const maxNameLen = 50

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50;not null" json:"last_name"`
	Email        string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	IsAdmin      bool   `gorm:"default:false;not null" json:"is_admin"`

	Places  []Place  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser validates field-level invariants and assigns the identity.
// Email uniqueness is the repository's job, not the constructor's.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	if utf8.RuneCountInString(firstName) > maxNameLen {
		return nil, httperr.ErrValidation("first_name_too_long", "first_name must be %d characters or fewer", maxNameLen)
	}
	if utf8.RuneCountInString(lastName) > maxNameLen {
		return nil, httperr.ErrValidation("last_name_too_long", "last_name must be %d characters or fewer", maxNameLen)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, httperr.ErrValidation("email_required", "email is required")
	}
	if !validators.IsEmailValid(email) {
		return nil, httperr.ErrValidation("invalid_email", "invalid email format")
	}

	return &User{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		IsAdmin:   isAdmin,
	}, nil
}
