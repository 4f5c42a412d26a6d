package handler

import (
	"net/http"
	"time"

	"batalla/backend/internal/models"
	"batalla/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SendInvitationInput names the friend to invite and the game to play.
type SendInvitationInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	GameType string `json:"game_type" binding:"required" example:"sudoku"`
}

// InvitationResponse is a game invitation joined with the sender's identity.
type InvitationResponse struct {
	ID        uint                    `json:"id" example:"1"`
	SenderID  uint                    `json:"sender_id" example:"1"`
	Sender    string                  `json:"sender" example:"alice"`
	GameType  string                  `json:"game_type" example:"sudoku"`
	Status    models.FriendshipStatus `json:"status" example:"pending"`
	CreatedAt time.Time               `json:"created_at"`
}

func newInvitationResponse(inv *models.GameInvitation) InvitationResponse {
	return InvitationResponse{
		ID:        inv.ID,
		SenderID:  inv.SenderID,
		Sender:    inv.Sender.Username,
		GameType:  inv.GameType,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
	}
}

// InvitationHandler serves game invitations between friends.
type InvitationHandler struct {
	invitations *service.InvitationService
}

// NewInvitationHandler creates an InvitationHandler.
func NewInvitationHandler(invitations *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

// Send godoc
// @Summary      Send game invitation
// @Description  Invites a friend to a game. The addressee must be a friend.
// @Tags         game-invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SendInvitationInput true "Invitation"
// @Success      201  {object}  InvitationResponse
// @Failure      400  {object}  ErrorResponse "Not friends"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /game-invitations/send [post]
func (h *InvitationHandler) Send(c *gin.Context) {
	var input SendInvitationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inv, err := h.invitations.Send(currentUserID(c), input.Username, input.GameType)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newInvitationResponse(inv))
}

// ListReceived godoc
// @Summary      List received game invitations
// @Description  Returns pending invitations addressed to the authenticated user.
// @Tags         game-invitations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   InvitationResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /game-invitations/received [get]
func (h *InvitationHandler) ListReceived(c *gin.Context) {
	invs, err := h.invitations.ListReceived(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invitations"})
		return
	}

	response := make([]InvitationResponse, 0, len(invs))
	for i := range invs {
		response = append(response, newInvitationResponse(&invs[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Decline godoc
// @Summary      Decline game invitation
// @Description  Declines a pending invitation addressed to the authenticated
// @Description  user, deleting it.
// @Tags         game-invitations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invitation ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the receiver"
// @Failure      404  {object}  ErrorResponse "Invitation not found"
// @Failure      409  {object}  ErrorResponse "Already processed"
// @Router       /game-invitations/decline/{id} [post]
func (h *InvitationHandler) Decline(c *gin.Context) {
	invitationID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.invitations.Decline(invitationID, currentUserID(c)); err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
}

// Accept godoc
// @Summary      Accept game invitation
// @Description  Accepts a pending invitation addressed to the authenticated user.
// @Tags         game-invitations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Invitation ID"
// @Success      200  {object}  InvitationResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the receiver"
// @Failure      404  {object}  ErrorResponse "Invitation not found"
// @Failure      409  {object}  ErrorResponse "Already processed"
// @Router       /game-invitations/accept/{id} [post]
func (h *InvitationHandler) Accept(c *gin.Context) {
	invitationID, ok := parseIDParam(c)
	if !ok {
		return
	}

	inv, err := h.invitations.Accept(invitationID, currentUserID(c))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newInvitationResponse(inv))
}
