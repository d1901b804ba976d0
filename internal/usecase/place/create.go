package place

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

type CreatePlaceInput struct {
	Principal authz.Principal

	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64

	// OwnerID is honored only for admin callers; everyone else owns
	// what they create.
	OwnerID string

	AmenityIDs []string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePlace struct {
	users     domain.UserRepository
	places    domain.PlaceRepository
	amenities domain.AmenityRepository
	audit     *audit.Dispatcher
}

func NewCreatePlace(
	users domain.UserRepository,
	places domain.PlaceRepository,
	amenities domain.AmenityRepository,
	audit *audit.Dispatcher,
) *CreatePlace {
	return &CreatePlace{
		users:     users,
		places:    places,
		amenities: amenities,
		audit:     audit,
	}
}

func (uc *CreatePlace) Execute(
	ctx context.Context,
	in CreatePlaceInput,
) (*models.Place, error) {

	// 1. Owner resolution.
	ownerID := authz.ResolvePlaceOwner(in.Principal, in.OwnerID)

	_, found, err := uc.users.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrValidation("owner_not_found", "owner not found")
	}

	// 2. Every amenity id must resolve; the failure names the id.
	resolved, err := resolveAmenities(ctx, uc.amenities, in.AmenityIDs)
	if err != nil {
		return nil, err
	}

	// 3. Construction enforces field invariants (title is truncated,
	// not rejected).
	p, err := models.NewPlace(
		in.Title,
		in.Description,
		in.Price,
		in.Latitude,
		in.Longitude,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	p.Amenities = resolved

	if err := uc.places.Add(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.Principal.UserID,
		Action:   "place_created",
		Entity:   "place",
		EntityID: &p.ID,
	})

	return p, nil
}

func resolveAmenities(
	ctx context.Context,
	amenities domain.AmenityRepository,
	ids []string,
) ([]models.Amenity, error) {

	resolved := make([]models.Amenity, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		a, found, err := amenities.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, httperr.ErrValidation("amenity_not_found", "amenity not found: %s", id)
		}
		resolved = append(resolved, *a)
	}

	return resolved, nil
}
