package user

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
	"github.com/BruksfildServices01/stay-listings/internal/validators"
)

type UpdateUserInput struct {
	Principal authz.Principal
	UserID    string

	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

type UpdateUser struct {
	users domain.UserRepository
	audit *audit.Dispatcher
}

func NewUpdateUser(
	users domain.UserRepository,
	audit *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		users: users,
		audit: audit,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	in UpdateUserInput,
) (*models.User, error) {

	// 1. Existence before authorization.
	u, found, err := uc.users.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrNotFound("user_not_found", "user not found")
	}

	// 2. Authorization.
	if err := authz.CanUpdateUser(in.Principal, u.ID); err != nil {
		return nil, err
	}
	if in.Email != nil || in.Password != nil {
		if err := authz.CanChangeCredentials(in.Principal); err != nil {
			return nil, err
		}
	}

	// 3. Whitelisted fields only; id and created_at are untouchable.
	if in.FirstName != nil {
		if utf8.RuneCountInString(*in.FirstName) > 50 {
			return nil, httperr.ErrValidation("first_name_too_long", "first_name must be 50 characters or fewer")
		}
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if utf8.RuneCountInString(*in.LastName) > 50 {
			return nil, httperr.ErrValidation("last_name_too_long", "last_name must be 50 characters or fewer")
		}
		u.LastName = *in.LastName
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if !validators.IsEmailValid(email) {
			return nil, httperr.ErrValidation("invalid_email", "invalid email format")
		}
		u.Email = email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, httperr.ErrValidation("password_required", "password must not be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	// The save reserves the email atomically; a check-then-save here
	// would let a concurrent registration slip past.
	if err := uc.users.UpdateUnique(ctx, u); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
