package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/stay-listings/internal/config"
	infraRepo "github.com/BruksfildServices01/stay-listings/internal/infra/repository"
	"github.com/BruksfildServices01/stay-listings/internal/models"
	"github.com/BruksfildServices01/stay-listings/internal/testing/testdb"
)

type api struct {
	t      *testing.T
	router *gin.Engine
	users  *infraRepo.UserGormRepository
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	cfg := &config.Config{JWTSecret: "test-secret"}

	r := gin.New()
	RegisterRoutes(r, db, cfg)

	return &api{
		t:      t,
		router: r,
		users:  infraRepo.NewUserGormRepository(db),
	}
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *api) decode(w *httptest.ResponseRecorder) map[string]any {
	a.t.Helper()
	var out map[string]any
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// seedAdmin inserts an admin directly; registration never grants the flag.
func (a *api) seedAdmin(email, password string) *models.User {
	a.t.Helper()

	admin, err := models.NewUser("Root", "Admin", email, true)
	require.NoError(a.t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(a.t, err)
	admin.PasswordHash = string(hash)

	require.NoError(a.t, a.users.AddUnique(context.Background(), admin))
	return admin
}

func (a *api) register(email, password string) map[string]any {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/users", "", gin.H{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   password,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return a.decode(w)
}

func (a *api) login(email, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	token, _ := a.decode(w)["access_token"].(string)
	require.NotEmpty(a.t, token)
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	a := newAPI(t)

	user := a.register("alice@example.com", "secret123")
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Nil(t, user["password"])

	// Duplicate email is rejected.
	w := a.do(http.MethodPost, "/api/v1/users", "", gin.H{
		"first_name": "Other",
		"last_name":  "User",
		"email":      "alice@example.com",
		"password":   "whatever1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	a.login("alice@example.com", "secret123")

	w = a.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodPost, "/api/v1/places", "", gin.H{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/v1/places", "not-a-token", gin.H{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAmenityManagement(t *testing.T) {
	a := newAPI(t)

	a.register("member@example.com", "secret123")
	memberToken := a.login("member@example.com", "secret123")

	a.seedAdmin("admin@example.com", "adminpass")
	adminToken := a.login("admin@example.com", "adminpass")

	w := a.do(http.MethodPost, "/api/v1/amenities", memberToken, gin.H{"name": "Wi-Fi"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPost, "/api/v1/amenities", adminToken, gin.H{"name": "Wi-Fi"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	amenity := a.decode(w)

	w = a.do(http.MethodGet, "/api/v1/amenities", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := a.decode(w)
	assert.EqualValues(t, 1, list["total"])

	w = a.do(http.MethodPut, "/api/v1/amenities/"+amenity["id"].(string), adminToken,
		gin.H{"name": "Fast Wi-Fi"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Fast Wi-Fi", a.decode(w)["name"])
}

func TestPlaceLifecycle(t *testing.T) {
	a := newAPI(t)

	owner := a.register("owner@example.com", "secret123")
	ownerToken := a.login("owner@example.com", "secret123")

	a.register("other@example.com", "secret123")
	otherToken := a.login("other@example.com", "secret123")

	a.seedAdmin("admin@example.com", "adminpass")
	adminToken := a.login("admin@example.com", "adminpass")

	w := a.do(http.MethodPost, "/api/v1/amenities", adminToken, gin.H{"name": "Pool"})
	require.Equal(t, http.StatusCreated, w.Code)
	amenityID := a.decode(w)["id"].(string)

	w = a.do(http.MethodPost, "/api/v1/places", ownerToken, gin.H{
		"title":       "Beach house",
		"description": "Sea view",
		"price":       120.0,
		"latitude":    43.6,
		"longitude":   7.1,
		"amenities":   []string{amenityID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	place := a.decode(w)
	placeID := place["id"].(string)

	// Ownership comes from the token, not the payload.
	ownerObj, ok := place["owner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, owner["id"], ownerObj["id"])

	w = a.do(http.MethodGet, "/api/v1/places/"+placeID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := a.decode(w)
	amenities, ok := got["amenities"].([]any)
	require.True(t, ok)
	assert.Len(t, amenities, 1)

	// Non-owners may not mutate.
	w = a.do(http.MethodPut, "/api/v1/places/"+placeID, otherToken, gin.H{"price": 1.0})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPut, "/api/v1/places/"+placeID, ownerToken, gin.H{"price": 150.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 150, a.decode(w)["price"])

	w = a.do(http.MethodDelete, "/api/v1/places/"+placeID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/places/"+placeID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodGet, "/api/v1/places/"+placeID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewLifecycle(t *testing.T) {
	a := newAPI(t)

	a.register("owner@example.com", "secret123")
	ownerToken := a.login("owner@example.com", "secret123")

	guest := a.register("guest@example.com", "secret123")
	guestToken := a.login("guest@example.com", "secret123")

	w := a.do(http.MethodPost, "/api/v1/places", ownerToken, gin.H{
		"title": "Cabin",
		"price": 80.0,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placeID := a.decode(w)["id"].(string)

	w = a.do(http.MethodPost, "/api/v1/reviews", guestToken, gin.H{
		"text":     "Loved it",
		"rating":   5,
		"place_id": placeID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	review := a.decode(w)
	reviewID := review["id"].(string)
	assert.Equal(t, guest["id"], review["user_id"])

	w = a.do(http.MethodGet, "/api/v1/places/"+placeID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := a.decode(w)
	assert.EqualValues(t, 1, list["total"])

	// A review against an unknown place is a validation failure.
	w = a.do(http.MethodPost, "/api/v1/reviews", guestToken, gin.H{
		"text":     "x",
		"rating":   3,
		"place_id": "missing",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/reviews/"+reviewID, ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/reviews/"+reviewID, guestToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/reviews/"+reviewID, guestToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserUpdateRules(t *testing.T) {
	a := newAPI(t)

	alice := a.register("alice@example.com", "secret123")
	aliceToken := a.login("alice@example.com", "secret123")
	aliceID := alice["id"].(string)

	bob := a.register("bob@example.com", "secret123")
	bobID := bob["id"].(string)

	a.seedAdmin("admin@example.com", "adminpass")
	adminToken := a.login("admin@example.com", "adminpass")

	w := a.do(http.MethodPut, "/api/v1/users/"+aliceID, aliceToken,
		gin.H{"first_name": "Alicia"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Alicia", a.decode(w)["first_name"])

	// Email changes are an admin operation.
	w = a.do(http.MethodPut, "/api/v1/users/"+aliceID, aliceToken,
		gin.H{"email": "new@example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodPut, "/api/v1/users/"+bobID, aliceToken,
		gin.H{"first_name": "Hax"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/users/"+bobID, aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/users/"+bobID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/users/"+bobID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
