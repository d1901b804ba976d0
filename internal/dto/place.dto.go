package dto

import "github.com/BruksfildServices01/stay-listings/internal/models"

type PlaceDTO struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Owner       UserDTO          `json:"owner"`
	Amenities   []AmenityDTO     `json:"amenities"`
	Reviews     []PlaceReviewDTO `json:"reviews"`
}

// FromPlace expects a place loaded with its relations.
func FromPlace(p *models.Place) PlaceDTO {
	return PlaceDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Owner:       FromUser(&p.Owner),
		Amenities:   FromAmenities(p.Amenities),
		Reviews:     placeReviews(p.Reviews),
	}
}

func FromPlaces(places []models.Place) []PlaceDTO {
	out := make([]PlaceDTO, 0, len(places))
	for i := range places {
		out = append(out, FromPlace(&places[i]))
	}
	return out
}
