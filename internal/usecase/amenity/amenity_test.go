package amenity

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/stay-listings/internal/audit"
	"github.com/BruksfildServices01/stay-listings/internal/domain/authz"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	infraRepo "github.com/BruksfildServices01/stay-listings/internal/infra/repository"
	"github.com/BruksfildServices01/stay-listings/internal/testing/testdb"
)

func setup(t *testing.T) (*infraRepo.AmenityGormRepository, *audit.Dispatcher) {
	t.Helper()
	db := testdb.Open(t)
	return infraRepo.NewAmenityGormRepository(db), audit.NewDispatcher(audit.New(db))
}

var (
	member = authz.Principal{UserID: "member"}
	admin  = authz.Principal{UserID: "root", IsAdmin: true}
)

func TestCreateAmenity(t *testing.T) {
	amenities, dispatcher := setup(t)
	uc := NewCreateAmenity(amenities, dispatcher)
	ctx := context.Background()

	_, err := uc.Execute(ctx, member, "Wi-Fi")
	assert.True(t, httperr.IsStatus(err, http.StatusForbidden))

	a, err := uc.Execute(ctx, admin, "Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name)

	_, err = uc.Execute(ctx, admin, "")
	assert.True(t, httperr.IsBusiness(err, "name_required"))
}

func TestUpdateAmenity(t *testing.T) {
	amenities, dispatcher := setup(t)
	ctx := context.Background()

	a, err := NewCreateAmenity(amenities, dispatcher).Execute(ctx, admin, "Wi-Fi")
	require.NoError(t, err)

	uc := NewUpdateAmenity(amenities, dispatcher)

	updated, err := uc.Execute(ctx, admin, a.ID, "Fast Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, "Fast Wi-Fi", updated.Name)

	_, err = uc.Execute(ctx, member, a.ID, "Hijacked")
	assert.True(t, httperr.IsStatus(err, http.StatusForbidden))

	_, err = uc.Execute(ctx, admin, a.ID, strings.Repeat("x", 51))
	assert.True(t, httperr.IsBusiness(err, "name_too_long"))

	// Existence is checked before authorization: a missing amenity is
	// 404 even for a caller who would be denied.
	_, err = uc.Execute(ctx, member, "missing", "X")
	assert.True(t, httperr.IsStatus(err, http.StatusNotFound))
}
