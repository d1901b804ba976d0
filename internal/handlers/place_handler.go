package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/dto"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/httpresp"
	"github.com/BruksfildServices01/stay-listings/internal/middleware"
	ucPlace "github.com/BruksfildServices01/stay-listings/internal/usecase/place"
)

type PlaceHandler struct {
	places   domain.PlaceRepository
	createUC *ucPlace.CreatePlace
	updateUC *ucPlace.UpdatePlace
	deleteUC *ucPlace.DeletePlace
}

func NewPlaceHandler(
	places domain.PlaceRepository,
	createUC *ucPlace.CreatePlace,
	updateUC *ucPlace.UpdatePlace,
	deleteUC *ucPlace.DeletePlace,
) *PlaceHandler {
	return &PlaceHandler{
		places:   places,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreatePlaceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

type UpdatePlaceRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

// --------- Handlers ---------

func (h *PlaceHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	place, err := h.createUC.Execute(c.Request.Context(), ucPlace.CreatePlaceInput{
		Principal:   principal,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     req.OwnerID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	full, found, err := h.places.GetWithRelations(c.Request.Context(), place.ID)
	if err != nil || !found {
		httperr.Internal(c, "failed_to_get_place", "failed to load created place")
		return
	}

	httpresp.Created(c, dto.FromPlace(full))
}

func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.places.GetAllWithRelations(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_places", "failed to list places")
		return
	}
	httpresp.List(c, dto.FromPlaces(places))
}

func (h *PlaceHandler) Get(c *gin.Context) {
	place, found, err := h.places.GetWithRelations(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_place", "failed to get place")
		return
	}
	if !found {
		httperr.NotFound(c, "place_not_found", "place not found")
		return
	}
	httpresp.OK(c, dto.FromPlace(place))
}

func (h *PlaceHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	place, err := h.updateUC.Execute(c.Request.Context(), ucPlace.UpdatePlaceInput{
		Principal:   principal,
		PlaceID:     c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Amenities:   req.Amenities,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	full, found, err := h.places.GetWithRelations(c.Request.Context(), place.ID)
	if err != nil || !found {
		httperr.Internal(c, "failed_to_get_place", "failed to load updated place")
		return
	}

	httpresp.OK(c, dto.FromPlace(full))
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), principal, c.Param("id")); err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "place deleted"})
}
