package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/stay-listings/internal/domain/rental"
	"github.com/BruksfildServices01/stay-listings/internal/dto"
	"github.com/BruksfildServices01/stay-listings/internal/httperr"
	"github.com/BruksfildServices01/stay-listings/internal/httpresp"
	"github.com/BruksfildServices01/stay-listings/internal/middleware"
	ucUser "github.com/BruksfildServices01/stay-listings/internal/usecase/user"
)

type UserHandler struct {
	users      domain.UserRepository
	registerUC *ucUser.RegisterUser
	updateUC   *ucUser.UpdateUser
	deleteUC   *ucUser.DeleteUser
}

func NewUserHandler(
	users domain.UserRepository,
	registerUC *ucUser.RegisterUser,
	updateUC *ucUser.UpdateUser,
	deleteUC *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		users:      users,
		registerUC: registerUC,
		updateUC:   updateUC,
		deleteUC:   deleteUC,
	}
}

// --------- Requests ---------

type RegisterUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucUser.RegisterUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.Created(c, dto.FromUser(user))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", "failed to list users")
		return
	}
	httpresp.List(c, dto.FromUsers(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	user, found, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Internal(c, "failed_to_get_user", "failed to get user")
		return
	}
	if !found {
		httperr.NotFound(c, "user_not_found", "user not found")
		return
	}
	httpresp.OK(c, dto.FromUser(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, err := h.updateUC.Execute(c.Request.Context(), ucUser.UpdateUserInput{
		Principal: principal,
		UserID:    c.Param("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, dto.FromUser(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "authentication required")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), principal, c.Param("id")); err != nil {
		httperr.Reply(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "user deleted"})
}
