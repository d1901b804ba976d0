package review

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

type UpdateReviewInput struct {
	Principal authz.Principal
	ReviewID  string

	Text   *string
	Rating *int
}

type UpdateReview struct {
	reviews domain.ReviewRepository
	audit   *audit.Dispatcher
}

func NewUpdateReview(
	reviews domain.ReviewRepository,
	audit *audit.Dispatcher,
) *UpdateReview {
	return &UpdateReview{
		reviews: reviews,
		audit:   audit,
	}
}

func (uc *UpdateReview) Execute(
	ctx context.Context,
	in UpdateReviewInput,
) (*models.Review, error) {

	rv, found, err := uc.reviews.Get(ctx, in.ReviewID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrNotFound("review_not_found", "review not found")
	}

	if err := authz.CanMutateReview(in.Principal, rv.UserID); err != nil {
		return nil, err
	}

	if in.Text != nil {
		if *in.Text == "" {
			return nil, httperr.ErrValidation("text_required", "text is required")
		}
		rv.Text = *in.Text
	}
	if in.Rating != nil {
		if err := models.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
		rv.Rating = *in.Rating
	}

	if err := uc.reviews.Update(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
