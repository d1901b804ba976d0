package amenity

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

type CreateAmenity struct {
	amenities domain.AmenityRepository
	audit     *audit.Dispatcher
}

func NewCreateAmenity(
	amenities domain.AmenityRepository,
	audit *audit.Dispatcher,
) *CreateAmenity {
	return &CreateAmenity{
		amenities: amenities,
		audit:     audit,
	}
}

func (uc *CreateAmenity) Execute(
	ctx context.Context,
	principal authz.Principal,
	name string,
) (*models.Amenity, error) {

	if err := authz.CanManageAmenities(principal); err != nil {
		return nil, err
	}

	a, err := models.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := uc.amenities.Add(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &principal.UserID,
		Action:   "amenity_created",
		Entity:   "amenity",
		EntityID: &a.ID,
	})

	return a, nil
}
