package handler

import (
	"net/http"

	"batalla/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UpdateProfileInput defines the structure for a profile update. Only the
// supplied fields change; the current password is required for any change.
type UpdateProfileInput struct {
	Username        *string `json:"username" binding:"omitempty,min=3,max=50" example:"newname"`
	Email           *string `json:"email" binding:"omitempty,email" example:"new@example.com"`
	NewPassword     *string `json:"new_password" binding:"omitempty,min=6"`
	CurrentPassword string  `json:"current_password" binding:"required" example:"password123"`
}

// UpdateAvatarInput carries the serialized avatar configuration.
type UpdateAvatarInput struct {
	Avatar string `json:"avatar" binding:"required"`
}

// DeleteAccountInput confirms account deletion with the password.
type DeleteAccountInput struct {
	Password string `json:"password" binding:"required"`
}

// SearchResultResponse is one search hit with the caller's relationship to it.
type SearchResultResponse struct {
	ID               uint    `json:"id" example:"2"`
	Username         string  `json:"username" example:"alice"`
	Avatar           *string `json:"avatar,omitempty"`
	FriendshipStatus string  `json:"friendship_status" example:"none" enums:"none,friends,pending_sent,pending_received"`
}

// endregion

// UserHandler serves profile management and user search.
type UserHandler struct {
	users   *service.UserService
	friends *service.FriendshipService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService, friends *service.FriendshipService) *UserHandler {
	return &UserHandler{users: users, friends: friends}
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Changes username, email and/or password. The current password is required.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateProfileInput true "Profile changes"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Wrong current password"
// @Failure      409  {object}  ErrorResponse "Username or email already taken"
// @Failure      422  {object}  ErrorResponse
// @Router       /profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	changes := service.ProfileChanges{
		Username: input.Username,
		Email:    input.Email,
		Password: input.NewPassword,
	}
	user, err := h.users.UpdateProfile(currentUserID(c), changes, input.CurrentPassword)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateAvatar godoc
// @Summary      Update avatar
// @Description  Stores the avatar configuration for the authenticated user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateAvatarInput true "Avatar configuration"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /avatar [put]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var input UpdateAvatarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.UpdateAvatar(currentUserID(c), input.Avatar)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteAccount godoc
// @Summary      Delete account
// @Description  Deletes the authenticated user's account and all of its friendships.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DeleteAccountInput true "Password confirmation"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Wrong password"
// @Router       /account [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	var input DeleteAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.users.Delete(currentUserID(c), input.Password); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// SearchUsers godoc
// @Summary      Search for users
// @Description  Case-insensitive substring search on usernames, excluding the
// @Description  caller, capped at 10 results. Each hit carries the caller's
// @Description  relationship to it.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        query query string true "Search query"
// @Success      200  {array}   SearchResultResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	query := c.Query("query")

	results, err := h.friends.SearchUsers(query, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	response := make([]SearchResultResponse, 0, len(results))
	for _, r := range results {
		response = append(response, SearchResultResponse{
			ID:               r.UserID,
			Username:         r.Username,
			Avatar:           r.Avatar,
			FriendshipStatus: r.FriendshipStatus,
		})
	}
	c.JSON(http.StatusOK, response)
}
