package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/dto"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/httpresp"
	"github.com/BruksfildServices01/stay-listings/internal/middleware"
	ucAmenity "github.com/BruksfildServices01/stay-listings/internal/usecase/amenity"
)

type AmenityHandler struct {
	amenities domain.AmenityRepository
	createUC  *ucAmenity.CreateAmenity
	updateUC  *ucAmenity.UpdateAmenity
}

func NewAmenityHandler(
	amenities domain.AmenityRepository,
	createUC *ucAmenity.CreateAmenity,
	updateUC *ucAmenity.UpdateAmenity,
) *AmenityHandler {
	return &AmenityHandler{
		amenities: amenities,
		createUC:  createUC,
		updateUC:  updateUC,
	}
}

// --------- Requests ---------

type AmenityRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Handlers ---------

func (h *AmenityHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	amenity, err := h.createUC.Execute(c.Request.Context(), principal, req.Name)
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, dto.FromAmenity(amenity))
}

func (h *AmenityHandler) List(c *gin.Context) {
	amenities, err := h.amenities.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_amenities", "failed to list amenities")
		return
	}
	httpresp.List(c, dto.FromAmenities(amenities))
}

func (h *AmenityHandler) Get(c *gin.Context) {
	amenity, found, err := h.amenities.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_amenity", "failed to get amenity")
		return
	}
	if !found {
		httperr.NotFound(c, "amenity_not_found", "amenity not found")
		return
	}
	httpresp.OK(c, dto.FromAmenity(amenity))
}

func (h *AmenityHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	amenity, err := h.updateUC.Execute(c.Request.Context(), principal, c.Param("id"), req.Name)
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, dto.FromAmenity(amenity))
}
