package rental

import (
	"context"

	"github.com/BruksfildServices01/stay-listings/internal/models"
)

// Repository is the storage-agnostic CRUD contract shared by all four
// entity kinds. Implementations do no validation; absence is reported
// as (nil, false), never as an error.
type Repository[T any] interface {
	Add(ctx context.Context, entity *T) error
	Get(ctx context.Context, id string) (*T, bool, error)
	GetByAttribute(ctx context.Context, name string, value any) (*T, bool, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) (bool, error)
}

// -------- User --------

type UserRepository interface {
	Repository[models.User]

	// AddUnique inserts the user and reserves the email in the same
	// transaction; a duplicate reports a validation error.
	AddUnique(ctx context.Context, user *models.User) error

	// UpdateUnique saves the user with the same email reservation
	// semantics as AddUnique, ignoring the user's own row.
	UpdateUnique(ctx context.Context, user *models.User) error

	GetByEmail(ctx context.Context, email string) (*models.User, bool, error)

	// DeleteCascade removes the user together with their places and
	// reviews.
	DeleteCascade(ctx context.Context, id string) (bool, error)
}

// -------- Place --------

type PlaceRepository interface {
	Repository[models.Place]

	// GetWithRelations loads owner, amenities and reviews.
	GetWithRelations(ctx context.Context, id string) (*models.Place, bool, error)

	GetAllWithRelations(ctx context.Context) ([]models.Place, error)

	// ReplaceAmenities swaps the full amenity set, never merges.
	ReplaceAmenities(ctx context.Context, place *models.Place, amenities []models.Amenity) error

	// DeleteCascade removes the place, its reviews and its amenity links.
	DeleteCascade(ctx context.Context, id string) (bool, error)
}

// -------- Amenity --------

type AmenityRepository interface {
	Repository[models.Amenity]
}

// -------- Review --------

type ReviewRepository interface {
	Repository[models.Review]

	// AddToPlace persists the review and its membership in the place's
	// collection atomically; the place's existence is re-checked inside
	// the transaction.
	AddToPlace(ctx context.Context, review *models.Review) error

	ListByPlace(ctx context.Context, placeID string) ([]models.Review, error)
}
