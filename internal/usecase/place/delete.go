package place

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
)

type DeletePlace struct {
	places domain.PlaceRepository
	audit  *audit.Dispatcher
}

func NewDeletePlace(
	places domain.PlaceRepository,
	audit *audit.Dispatcher,
) *DeletePlace {
	return &DeletePlace{
		places: places,
		audit:  audit,
	}
}

// Execute removes the place along with its reviews and amenity links.
func (uc *DeletePlace) Execute(
	ctx context.Context,
	principal authz.Principal,
	placeID string,
) error {

	p, found, err := uc.places.Get(ctx, placeID)
	if err != nil {
		return err
	}
	if !found {
		return httperr.ErrNotFound("place_not_found", "place not found")
	}

	if err := authz.CanMutatePlace(principal, p.OwnerID); err != nil {
		return err
	}

	if _, err := uc.places.DeleteCascade(ctx, placeID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.UserID,
		Action:   "place_deleted",
		Entity:   "place",
		EntityID: &placeID,
	})

	return nil
}
