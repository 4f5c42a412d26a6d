package handler

import (
	"errors"
	"net/http"

	"batalla/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a generic success message.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// abortServiceError converts a service error into a JSON error response.
// Unrecognized errors become 500s with a generic body; no error kind ever
// crashes the process.
func abortServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyPending),
		errors.Is(err, service.ErrAlreadyFriends),
		errors.Is(err, service.ErrAlreadyProcessed):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrBadCredential):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrFriendshipNotFound),
		errors.Is(err, service.ErrInvitationNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrSelfRequest),
		errors.Is(err, service.ErrNotFriends),
		errors.Is(err, service.ErrInvalidResetCode),
		errors.Is(err, service.ErrExpiredResetCode):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrInvalidUsername):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	}

	c.JSON(status, gin.H{"error": message})
}

// currentUserID reads the user id set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	return userID.(uint)
}
