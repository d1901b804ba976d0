package dto

import "github.com/BruksfildServices01/stay-listings/internal/models"

type AmenityDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromAmenity(a *models.Amenity) AmenityDTO {
	return AmenityDTO{ID: a.ID, Name: a.Name}
}

func FromAmenities(amenities []models.Amenity) []AmenityDTO {
	out := make([]AmenityDTO, 0, len(amenities))
	for i := range amenities {
		out = append(out, FromAmenity(&amenities[i]))
	}
	return out
}
