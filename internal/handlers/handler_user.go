package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/saiuttej/books-backend/internal/core/ports/services"
	"github.com/saiuttej/books-backend/internal/dto"
	"github.com/saiuttej/books-backend/internal/middleware"
)

// userHandler handles requests on the authenticated user's own account.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
		users.POST("/me/change-password", h.changePassword)
	}
}

// getMe godoc
// @Summary Get current user
// @Description Returns the authenticated user's profile.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateMe godoc
// @Summary Update current user
// @Description Updates the authenticated user's profile fields.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the current password and sets a new one.
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body dto.ChangePasswordRequest true "Current and new password"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Current password incorrect"
// @Security BearerAuth
// @Router /users/me/change-password [post]
func (h *userHandler) changePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
