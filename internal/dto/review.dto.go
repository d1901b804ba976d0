package dto

import "github.com/BruksfildServices01/stay-listings/internal/models"

type ReviewDTO struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// PlaceReviewDTO is the review shape embedded in a place; the place id
// is implied by the parent.
type PlaceReviewDTO struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	UserID string `json:"user_id"`
}

func FromReview(r *models.Review) ReviewDTO {
	return ReviewDTO{
		ID:      r.ID,
		Text:    r.Text,
		Rating:  r.Rating,
		UserID:  r.UserID,
		PlaceID: r.PlaceID,
	}
}

func FromReviews(reviews []models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(reviews))
	for i := range reviews {
		out = append(out, FromReview(&reviews[i]))
	}
	return out
}

func placeReviews(reviews []models.Review) []PlaceReviewDTO {
	out := make([]PlaceReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, PlaceReviewDTO{
			ID:     r.ID,
			Text:   r.Text,
			Rating: r.Rating,
			UserID: r.UserID,
		})
	}
	return out
}
