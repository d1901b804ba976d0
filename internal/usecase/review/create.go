package review

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReviewInput struct {
	Principal authz.Principal

	Text    string
	Rating  int
	PlaceID string

	// UserID is the review author. Non-admins may only author as
	// themselves; empty defaults to the caller.
	UserID string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReview struct {
	users   domain.UserRepository
	places  domain.PlaceRepository
	reviews domain.ReviewRepository
	audit   *audit.Dispatcher
}

func NewCreateReview(
	users domain.UserRepository,
	places domain.PlaceRepository,
	reviews domain.ReviewRepository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		users:   users,
		places:  places,
		reviews: reviews,
		audit:   audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	// 1. Authorship.
	authorID, err := authz.ResolveReviewAuthor(in.Principal, in.UserID)
	if err != nil {
		return nil, err
	}

	// 2. Both foreign references must resolve; an unresolvable one is
	// a validation failure, not a 404.
	if _, found, err := uc.users.Get(ctx, authorID); err != nil {
		return nil, err
	} else if !found {
		return nil, httperr.ErrValidation("user_not_found", "user not found")
	}

	if _, found, err := uc.places.Get(ctx, in.PlaceID); err != nil {
		return nil, err
	} else if !found {
		return nil, httperr.ErrValidation("place_not_found", "place not found")
	}

	// 3. Construction validates text and rating range.
	rv, err := models.NewReview(in.Text, in.Rating, in.PlaceID, authorID)
	if err != nil {
		return nil, err
	}

	// 4. Review row and place membership commit together.
	if err := uc.reviews.AddToPlace(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &rv.ID,
	})

	return rv, nil
}
