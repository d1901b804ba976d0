package review

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	infraRepo "github.com/BruksfildServices01/stay-listings/internal/infra/repository"
	"github.com/BruksfildServices01/stay-listings/internal/models"
	"github.com/BruksfildServices01/stay-listings/internal/testing/testdb"
)

type fixture struct {
	db      *gorm.DB
	users   *infraRepo.UserGormRepository
	places  *infraRepo.PlaceGormRepository
	reviews *infraRepo.ReviewGormRepository
	audit   *audit.Dispatcher
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	return &fixture{
		db:      db,
		users:   infraRepo.NewUserGormRepository(db),
		places:  infraRepo.NewPlaceGormRepository(db),
		reviews: infraRepo.NewReviewGormRepository(db),
		audit:   audit.NewDispatcher(audit.New(db)),
	}
}

func (f *fixture) user(t *testing.T, email string) *models.User {
	t.Helper()
	u, err := models.NewUser("Test", "User", email, false)
	require.NoError(t, err)
	require.NoError(t, f.users.AddUnique(context.Background(), u))
	return u
}

func (f *fixture) place(t *testing.T, ownerID string) *models.Place {
	t.Helper()
	p, err := models.NewPlace("Test place", "", 50, 0, 0, ownerID)
	require.NoError(t, err)
	require.NoError(t, f.places.Add(context.Background(), p))
	return p
}

func (f *fixture) createUC() *CreateReview {
	return NewCreateReview(f.users, f.places, f.reviews, f.audit)
}

func strptr(s string) *string { return &s }
func intptr(v int) *int       { return &v }

// Create user → place → review, then read the place back: one review,
// rating 5, authored by that user.
func TestCreateReview_Scenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	owner := f.user(t, "a@b.com")
	guest := f.user(t, "guest@b.com")
	place := f.place(t, owner.ID)

	rv, err := f.createUC().Execute(ctx, CreateReviewInput{
		Principal: authz.Principal{UserID: guest.ID},
		Text:      "Great",
		Rating:    5,
		PlaceID:   place.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, rv.UserID)

	got, found, err := f.places.GetWithRelations(ctx, place.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, 5, got.Reviews[0].Rating)
	assert.Equal(t, guest.ID, got.Reviews[0].UserID)
}

func TestCreateReview_CannotAuthorAsSomeoneElse(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	owner := f.user(t, "a@b.com")
	other := f.user(t, "other@b.com")
	place := f.place(t, owner.ID)

	_, err := f.createUC().Execute(ctx, CreateReviewInput{
		Principal: authz.Principal{UserID: owner.ID},
		Text:      "fake",
		Rating:    5,
		PlaceID:   place.ID,
		UserID:    other.ID,
	})
	assert.True(t, httperr.IsStatus(err, http.StatusForbidden))

	// Admins may.
	rv, err := f.createUC().Execute(ctx, CreateReviewInput{
		Principal: authz.Principal{UserID: owner.ID, IsAdmin: true},
		Text:      "on behalf",
		Rating:    4,
		PlaceID:   place.ID,
		UserID:    other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, rv.UserID)
}

func TestCreateReview_RatingRange(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	owner := f.user(t, "a@b.com")
	place := f.place(t, owner.ID)

	for _, rating := range []int{0, 6} {
		_, err := f.createUC().Execute(ctx, CreateReviewInput{
			Principal: authz.Principal{UserID: owner.ID},
			Text:      "x",
			Rating:    rating,
			PlaceID:   place.ID,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"), "rating %d", rating)
	}
}

// Unresolvable references are validation failures, not 404s.
func TestCreateReview_MissingPlaceIsValidationError(t *testing.T) {
	f := setup(t)

	owner := f.user(t, "a@b.com")

	_, err := f.createUC().Execute(context.Background(), CreateReviewInput{
		Principal: authz.Principal{UserID: owner.ID},
		Text:      "x",
		Rating:    3,
		PlaceID:   "missing-place",
	})
	assert.True(t, httperr.IsBusiness(err, "place_not_found"))
	assert.True(t, httperr.IsStatus(err, http.StatusBadRequest))
}

func TestUpdateReview(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	owner := f.user(t, "a@b.com")
	guest := f.user(t, "guest@b.com")
	place := f.place(t, owner.ID)

	rv, err := f.createUC().Execute(ctx, CreateReviewInput{
		Principal: authz.Principal{UserID: guest.ID},
		Text:      "ok",
		Rating:    3,
		PlaceID:   place.ID,
	})
	require.NoError(t, err)

	uc := NewUpdateReview(f.reviews, f.audit)

	// Only the author (or an admin) may update.
	_, err = uc.Execute(ctx, UpdateReviewInput{
		Principal: authz.Principal{UserID: owner.ID},
		ReviewID:  rv.ID,
		Text:      strptr("edited"),
	})
	assert.True(t, httperr.IsStatus(err, http.StatusForbidden))

	updated, err := uc.Execute(ctx, UpdateReviewInput{
		Principal: authz.Principal{UserID: guest.ID},
		ReviewID:  rv.ID,
		Text:      strptr("actually great"),
		Rating:    intptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, "actually great", updated.Text)
	assert.Equal(t, 5, updated.Rating)

	_, err = uc.Execute(ctx, UpdateReviewInput{
		Principal: authz.Principal{UserID: guest.ID},
		ReviewID:  rv.ID,
		Rating:    intptr(9),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_rating"))
}

func TestDeleteReview(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	owner := f.user(t, "a@b.com")
	guest := f.user(t, "guest@b.com")
	place := f.place(t, owner.ID)

	rv, err := f.createUC().Execute(ctx, CreateReviewInput{
		Principal: authz.Principal{UserID: guest.ID},
		Text:      "bye",
		Rating:    2,
		PlaceID:   place.ID,
	})
	require.NoError(t, err)

	uc := NewDeleteReview(f.reviews, f.audit)

	err = uc.Execute(ctx, authz.Principal{UserID: owner.ID}, rv.ID)
	assert.True(t, httperr.IsStatus(err, http.StatusForbidden))

	require.NoError(t, uc.Execute(ctx, authz.Principal{UserID: guest.ID}, rv.ID))

	// Gone from the repository and from the place's collection.
	_, found, err := f.reviews.Get(ctx, rv.ID)
	require.NoError(t, err)
	assert.False(t, found)

	got, _, err := f.places.GetWithRelations(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Reviews)

	err = uc.Execute(ctx, authz.Principal{UserID: guest.ID}, rv.ID)
	assert.True(t, httperr.IsStatus(err, http.StatusNotFound))
}

func TestListReviewsByPlace(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	owner := f.user(t, "a@b.com")
	guest := f.user(t, "guest@b.com")
	place := f.place(t, owner.ID)

	for _, text := range []string{"one", "two"} {
		_, err := f.createUC().Execute(ctx, CreateReviewInput{
			Principal: authz.Principal{UserID: guest.ID},
			Text:      text,
			Rating:    4,
			PlaceID:   place.ID,
		})
		require.NoError(t, err)
	}

	uc := NewListReviewsByPlace(f.places, f.reviews)

	reviews, err := uc.Execute(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = uc.Execute(ctx, "missing")
	assert.True(t, httperr.IsStatus(err, http.StatusNotFound))
}
