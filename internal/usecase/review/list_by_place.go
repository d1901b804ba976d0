package review

import (
	"context"

	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

type ListReviewsByPlace struct {
	places  domain.PlaceRepository
	reviews domain.ReviewRepository
}

func NewListReviewsByPlace(
	places domain.PlaceRepository,
	reviews domain.ReviewRepository,
) *ListReviewsByPlace {
	return &ListReviewsByPlace{
		places:  places,
		reviews: reviews,
	}
}

func (uc *ListReviewsByPlace) Execute(
	ctx context.Context,
	placeID string,
) ([]models.Review, error) {

	_, found, err := uc.places.Get(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrNotFound("place_not_found", "place not found")
	}

	return uc.reviews.ListByPlace(ctx, placeID)
}
