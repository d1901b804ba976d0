package place

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

type UpdatePlaceInput struct {
	Principal authz.Principal
	PlaceID   string

	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64

	// A non-nil Amenities replaces the whole set; nil leaves it alone.
	Amenities *[]string
}

type UpdatePlace struct {
	places    domain.PlaceRepository
	amenities domain.AmenityRepository
	audit     *audit.Dispatcher
}

func NewUpdatePlace(
	places domain.PlaceRepository,
	amenities domain.AmenityRepository,
	audit *audit.Dispatcher,
) *UpdatePlace {
	return &UpdatePlace{
		places:    places,
		amenities: amenities,
		audit:     audit,
	}
}

func (uc *UpdatePlace) Execute(
	ctx context.Context,
	in UpdatePlaceInput,
) (*models.Place, error) {

	// 1. Existence before authorization.
	p, found, err := uc.places.Get(ctx, in.PlaceID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrNotFound("place_not_found", "place not found")
	}

	// 2. Authorization.
	if err := authz.CanMutatePlace(in.Principal, p.OwnerID); err != nil {
		return nil, err
	}

	// 3. Scalar whitelist.
	if in.Title != nil {
		p.Title = models.TruncateTitle(*in.Title)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if err := models.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
		p.Price = *in.Price
	}
	if in.Latitude != nil || in.Longitude != nil {
		lat, lon := p.Latitude, p.Longitude
		if in.Latitude != nil {
			lat = *in.Latitude
		}
		if in.Longitude != nil {
			lon = *in.Longitude
		}
		if err := models.ValidateCoordinates(lat, lon); err != nil {
			return nil, err
		}
		p.Latitude, p.Longitude = lat, lon
	}

	// 4. Amenity set replacement after re-validating every id.
	if in.Amenities != nil {
		resolved, err := resolveAmenities(ctx, uc.amenities, *in.Amenities)
		if err != nil {
			return nil, err
		}
		if err := uc.places.ReplaceAmenities(ctx, p, resolved); err != nil {
			return nil, err
		}
	}

	if err := uc.places.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   "place_updated",
		Entity:   "place",
		EntityID: &p.ID,
	})

	return p, nil
}
