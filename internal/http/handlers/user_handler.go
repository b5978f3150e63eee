package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/http/middleware"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetProfile handles getting a user's public profile
// @Summary Get user profile
// @Description Get the public profile of a user. The wallet balance is only included for the profile owner.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userUseCase.GetProfile(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMe handles getting the authenticated user's own profile
// @Summary Get own profile
// @Description Get the profile of the user identified by the bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		middleware.RespondError(c, domain.NewUnauthorizedError("User not authenticated"))
		return
	}

	profile, err := h.userUseCase.GetProfile(c.Request.Context(), userID, userID)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
