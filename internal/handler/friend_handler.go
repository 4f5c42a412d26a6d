package handler

import (
	"net/http"
	"strconv"
	"time"

	"batalla/backend/internal/models"
	"batalla/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SendRequestInput names the user to befriend.
type SendRequestInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
}

// FriendshipResponse is a friendship edge as the API exposes it.
type FriendshipResponse struct {
	ID          uint                    `json:"id" example:"1"`
	RequesterID uint                    `json:"requester_id" example:"1"`
	AddresseeID uint                    `json:"addressee_id" example:"2"`
	Status      models.FriendshipStatus `json:"status" example:"pending"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// IncomingRequestResponse is a pending request joined with the requester.
type IncomingRequestResponse struct {
	FriendshipID uint      `json:"friendship_id" example:"1"`
	RequesterID  uint      `json:"requester_id" example:"1"`
	Username     string    `json:"username" example:"alice"`
	Avatar       *string   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FriendResponse is one entry of the friend list, flattened to the other party.
type FriendResponse struct {
	ID           uint    `json:"id" example:"2"`
	Username     string  `json:"username" example:"alice"`
	Email        string  `json:"email" example:"alice@example.com"`
	Avatar       *string `json:"avatar,omitempty"`
	FriendshipID uint    `json:"friendship_id" example:"1"`
}

func newFriendshipResponse(edge *models.Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:          edge.ID,
		RequesterID: edge.RequesterID,
		AddresseeID: edge.AddresseeID,
		Status:      edge.Status,
		CreatedAt:   edge.CreatedAt,
		UpdatedAt:   edge.UpdatedAt,
	}
}

// endregion

// FriendHandler serves the friendship state machine.
type FriendHandler struct {
	friends *service.FriendshipService
}

// NewFriendHandler creates a FriendHandler.
func NewFriendHandler(friends *service.FriendshipService) *FriendHandler {
	return &FriendHandler{friends: friends}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// SendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to the named user.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendRequestInput true "Addressee"
// @Success      201  {object}  FriendshipResponse
// @Failure      400  {object}  ErrorResponse "Self request"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      409  {object}  ErrorResponse "Already pending or already friends"
// @Router       /friends/request [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var input SendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	edge, err := h.friends.SendRequest(currentUserID(c), input.Username)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFriendshipResponse(edge))
}

// ListRequests godoc
// @Summary      List incoming friend requests
// @Description  Returns pending requests addressed to the authenticated user.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   IncomingRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests [get]
func (h *FriendHandler) ListRequests(c *gin.Context) {
	edges, err := h.friends.ListIncoming(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	response := make([]IncomingRequestResponse, 0, len(edges))
	for _, edge := range edges {
		response = append(response, IncomingRequestResponse{
			FriendshipID: edge.ID,
			RequesterID:  edge.RequesterID,
			Username:     edge.Requester.Username,
			Avatar:       edge.Requester.Avatar,
			CreatedAt:    edge.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// AcceptRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending request addressed to the authenticated user.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  FriendshipResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the addressee"
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Failure      409  {object}  ErrorResponse "Already processed"
// @Router       /friends/accept/{id} [post]
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	friendshipID, ok := parseIDParam(c)
	if !ok {
		return
	}

	edge, err := h.friends.Accept(friendshipID, currentUserID(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFriendshipResponse(edge))
}

// RejectRequest godoc
// @Summary      Reject friend request
// @Description  Rejects a pending request, deleting it so the pair can
// @Description  re-request later.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the addressee"
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Failure      409  {object}  ErrorResponse "Already processed"
// @Router       /friends/reject/{id} [post]
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	friendshipID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.friends.Reject(friendshipID, currentUserID(c)); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request rejected"})
}

// ListFriends godoc
// @Summary      List friends
// @Description  Returns the authenticated user's accepted friendships,
// @Description  flattened to the other party's identity.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *FriendHandler) ListFriends(c *gin.Context) {
	views, err := h.friends.ListFriends(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	response := make([]FriendResponse, 0, len(views))
	for _, v := range views {
		response = append(response, FriendResponse{
			ID:           v.UserID,
			Username:     v.Username,
			Email:        v.Email,
			Avatar:       v.Avatar,
			FriendshipID: v.FriendshipID,
		})
	}
	c.JSON(http.StatusOK, response)
}

// RemoveFriend godoc
// @Summary      Remove friendship
// @Description  Deletes a friendship the authenticated user is party to,
// @Description  pending or accepted.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friendship ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not a party"
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Router       /friends/{id} [delete]
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	friendshipID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.friends.Remove(friendshipID, currentUserID(c)); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friendship removed"})
}
