package review

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
)

type DeleteReview struct {
	reviews domain.ReviewRepository
	audit   *audit.Dispatcher
}

func NewDeleteReview(
	reviews domain.ReviewRepository,
	audit *audit.Dispatcher,
) *DeleteReview {
	return &DeleteReview{
		reviews: reviews,
		audit:   audit,
	}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	principal authz.Principal,
	reviewID string,
) error {

	rv, found, err := uc.reviews.Get(ctx, reviewID)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrNotFound("review_not_found", "review not found")
	}

	if err := authz.CanMutateReview(principal, rv.UserID); err != nil {
		return err
	}

	deleted, err := uc.reviews.Delete(ctx, reviewID)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrNotFound("review_not_found", "review not found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.UserID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &reviewID,
	})

	return nil
}
