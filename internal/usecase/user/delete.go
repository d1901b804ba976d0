package user

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
)

type DeleteUser struct {
	users domain.UserRepository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	users domain.UserRepository,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		users: users,
		audit: audit,
	}
}

// Execute removes the user together with their places and reviews.
func (uc *DeleteUser) Execute(
	ctx context.Context,
	principal authz.Principal,
	userID string,
) error {

	_, found, err := uc.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrNotFound("user_not_found", "user not found")
	}

	if err := authz.CanDeleteUser(principal); err != nil {
		return err
	}

	if _, err := uc.users.DeleteCascade(ctx, userID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.UserID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &userID,
	})

	return nil
}
