package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/dto"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/httpresp"
	"github.com/BruksfildServices01/stay-listings/internal/middleware"
	ucReview "github.com/BruksfildServices01/stay-listings/internal/usecase/review"
)

type ReviewHandler struct {
	reviews       domain.ReviewRepository
	createUC      *ucReview.CreateReview
	updateUC      *ucReview.UpdateReview
	deleteUC      *ucReview.DeleteReview
	listByPlaceUC *ucReview.ListReviewsByPlace
}

func NewReviewHandler(
	reviews domain.ReviewRepository,
	createUC *ucReview.CreateReview,
	updateUC *ucReview.UpdateReview,
	deleteUC *ucReview.DeleteReview,
	listByPlaceUC *ucReview.ListReviewsByPlace,
) *ReviewHandler {
	return &ReviewHandler{
		reviews:       reviews,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listByPlaceUC: listByPlaceUC,
	}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	PlaceID string `json:"place_id" binding:"required"`
	UserID  string `json:"user_id"`
}

type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		Principal: principal,
		Text:      req.Text,
		Rating:    req.Rating,
		PlaceID:   req.PlaceID,
		UserID:    req.UserID,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, dto.FromReview(review))
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "failed to list reviews")
		return
	}
	httpresp.List(c, dto.FromReviews(reviews))
}

func (h *ReviewHandler) Get(c *gin.Context) {
	review, found, err := h.reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_review", "failed to get review")
		return
	}
	if !found {
		httperr.NotFound(c, "review_not_found", "review not found")
		return
	}
	httpresp.OK(c, dto.FromReview(review))
}

func (h *ReviewHandler) ListByPlace(c *gin.Context) {
	reviews, err := h.listByPlaceUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Reply(c, err)
		return
	}
	httpresp.List(c, dto.FromReviews(reviews))
}

func (h *ReviewHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	review, err := h.updateUC.Execute(c.Request.Context(), ucReview.UpdateReviewInput{
		Principal: principal,
		ReviewID:  c.Param("id"),
		Text:      req.Text,
		Rating:    req.Rating,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, dto.FromReview(review))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), principal, c.Param("id")); err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "review deleted"})
}
