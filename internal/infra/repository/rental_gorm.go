package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/models"
)

// --------------------------------------------------
// User
// --------------------------------------------------

type UserGormRepository struct {
	*GormRepository[models.User]
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{
		GormRepository: NewGormRepository[models.User](db),
		db:             db,
	}
}

func (r *UserGormRepository) AddUnique(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ?", user.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrValidation("email_already_registered", "email already registered")
		}
		return tx.Create(user).Error
	})

	// The unique index backstops the pre-check against a concurrent insert.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrValidation("email_already_registered", "email already registered")
	}
	return err
}

func (r *UserGormRepository) UpdateUnique(ctx context.Context, user *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ? AND id <> ?", user.Email, user.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return httperr.ErrValidation("email_already_registered", "email already registered")
		}
		return tx.Save(user).Error
	})

	// The unique index backstops the pre-check against a concurrent write.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrValidation("email_already_registered", "email already registered")
	}
	return err
}

func (r *UserGormRepository) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	return r.GetByAttribute(ctx, "email", email)
}

func (r *UserGormRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		var places []models.Place
		if err := tx.Where("owner_id = ?", id).Find(&places).Error; err != nil {
			return err
		}
		for i := range places {
			if err := deletePlaceTx(tx, &places[i]); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	return found, err
}

// --------------------------------------------------
// Place
// --------------------------------------------------

type PlaceGormRepository struct {
	*GormRepository[models.Place]
	db *gorm.DB
}

func NewPlaceGormRepository(db *gorm.DB) *PlaceGormRepository {
	return &PlaceGormRepository{
		GormRepository: NewGormRepository[models.Place](db),
		db:             db,
	}
}

func (r *PlaceGormRepository) GetWithRelations(ctx context.Context, id string) (*models.Place, bool, error) {
	var place models.Place
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Amenities").
		Preload("Reviews").
		Where("id = ?", id).
		First(&place).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &place, true, nil
}

func (r *PlaceGormRepository) GetAllWithRelations(ctx context.Context) ([]models.Place, error) {
	var places []models.Place
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Amenities").
		Preload("Reviews").
		Find(&places).Error

	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PlaceGormRepository) ReplaceAmenities(ctx context.Context, place *models.Place, amenities []models.Amenity) error {
	return r.db.WithContext(ctx).
		Model(place).
		Association("Amenities").
		Replace(&amenities)
}

func (r *PlaceGormRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var place models.Place
		if err := tx.Where("id = ?", id).First(&place).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return deletePlaceTx(tx, &place)
	})
	return found, err
}

// deletePlaceTx removes a place, its reviews and its amenity links
// inside the caller's transaction.
func deletePlaceTx(tx *gorm.DB, place *models.Place) error {
	if err := tx.Where("place_id = ?", place.ID).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Model(place).Association("Amenities").Clear(); err != nil {
		return err
	}
	return tx.Delete(place).Error
}

// --------------------------------------------------
// Amenity
// --------------------------------------------------

type AmenityGormRepository struct {
	*GormRepository[models.Amenity]
}

func NewAmenityGormRepository(db *gorm.DB) *AmenityGormRepository {
	return &AmenityGormRepository{
		GormRepository: NewGormRepository[models.Amenity](db),
	}
}

// --------------------------------------------------
// Review
// --------------------------------------------------

type ReviewGormRepository struct {
	*GormRepository[models.Review]
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{
		GormRepository: NewGormRepository[models.Review](db),
		db:             db,
	}
}

func (r *ReviewGormRepository) AddToPlace(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Place{}).
			Where("id = ?", review.PlaceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return httperr.ErrNotFound("place_not_found", "place not found")
		}
		return tx.Create(review).Error
	})
}

func (r *ReviewGormRepository) ListByPlace(ctx context.Context, placeID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Order("created_at ASC").
		Find(&reviews).Error

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Compile-time checks
var (
	_ domain.UserRepository    = (*UserGormRepository)(nil)
	_ domain.PlaceRepository   = (*PlaceGormRepository)(nil)
	_ domain.AmenityRepository = (*AmenityGormRepository)(nil)
	_ domain.ReviewRepository  = (*ReviewGormRepository)(nil)
)
