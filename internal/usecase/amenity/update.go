package amenity

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

type UpdateAmenity struct {
	amenities domain.AmenityRepository
	audit     *audit.Dispatcher
}

func NewUpdateAmenity(
	amenities domain.AmenityRepository,
	audit *audit.Dispatcher,
) *UpdateAmenity {
	return &UpdateAmenity{
		amenities: amenities,
		audit:     audit,
	}
}

func (uc *UpdateAmenity) Execute(
	ctx context.Context,
	principal authz.Principal,
	amenityID string,
	name string,
) (*models.Amenity, error) {

	a, found, err := uc.amenities.Get(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, httperr.ErrNotFound("amenity_not_found", "amenity not found")
	}

	if err := authz.CanManageAmenities(principal); err != nil {
		return nil, err
	}

	if err := models.ValidateAmenityName(name); err != nil {
		return nil, err
	}
	a.Name = name

	if err := uc.amenities.Update(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.UserID,
		Action:   "amenity_updated",
		Entity:   "amenity",
		EntityID: &a.ID,
	})

	return a, nil
}
