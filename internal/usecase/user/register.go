package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// ======================================================
// USE CASE
// ======================================================

type RegisterUser struct {
	users domain.UserRepository
	audit *audit.Dispatcher
}

func NewRegisterUser(
	users domain.UserRepository,
	audit *audit.Dispatcher,
) *RegisterUser {
	return &RegisterUser{
		users: users,
		audit: audit,
	}
}

func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterUserInput,
) (*models.User, error) {

	// Credential is mandatory at registration, and distinct from the
	// field-level validation the constructor performs.
	if in.Password == "" {
		return nil, httperr.ErrValidation("password_required", "password is required")
	}

	u, err := models.NewUser(in.FirstName, in.LastName, in.Email, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hashed)

	// Insert and email reservation happen in the same transaction.
	if err := uc.users.AddUnique(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
