package service

import (
	"errors"

	"batalla/backend/internal/models"

	"gorm.io/gorm"
)

// InvitationService stores game invitations between friends. Invitations are
// plain records for the frontend; no game state lives on the server.
type InvitationService struct {
	users   *UserService
	friends *FriendshipService
	db      *gorm.DB
}

// NewInvitationService creates an InvitationService.
func NewInvitationService(db *gorm.DB, users *UserService, friends *FriendshipService) *InvitationService {
	return &InvitationService{users: users, friends: friends, db: db}
}

// Send records an invitation from sender to the named friend.
func (s *InvitationService) Send(senderID uint, receiverUsername, gameType string) (*models.GameInvitation, error) {
	sender, err := s.users.FindByID(senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.users.FindByUsername(receiverUsername)
	if err != nil {
		return nil, err
	}
	if receiver.ID == senderID {
		return nil, ErrSelfRequest
	}

	friends, err := s.friends.AreFriends(senderID, receiver.ID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	inv := models.GameInvitation{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		GameType:   gameType,
		Status:     models.StatusPending,
	}
	if err := s.db.Create(&inv).Error; err != nil {
		return nil, err
	}
	inv.Sender = *sender
	inv.Receiver = *receiver
	return &inv, nil
}

// ListReceived returns the user's pending invitations with senders preloaded.
func (s *InvitationService) ListReceived(userID uint) ([]models.GameInvitation, error) {
	var invs []models.GameInvitation
	err := s.db.Where("receiver_id = ? AND status = ?", userID, models.StatusPending).
		Preload("Sender").
		Find(&invs).Error
	if err != nil {
		return nil, err
	}
	return invs, nil
}

// Decline deletes a pending invitation. Only the receiver may decline, and
// only while it is still pending.
func (s *InvitationService) Decline(invitationID, userID uint) error {
	var inv models.GameInvitation
	if err := s.db.First(&inv, invitationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	if inv.ReceiverID != userID {
		return ErrForbidden
	}
	if inv.Status != models.StatusPending {
		return ErrAlreadyProcessed
	}
	return s.db.Delete(&inv).Error
}

// Accept marks a pending invitation accepted. Only the receiver may accept.
func (s *InvitationService) Accept(invitationID, userID uint) (*models.GameInvitation, error) {
	var inv models.GameInvitation
	if err := s.db.First(&inv, invitationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	if inv.ReceiverID != userID {
		return nil, ErrForbidden
	}
	if inv.Status != models.StatusPending {
		return nil, ErrAlreadyProcessed
	}

	inv.Status = models.StatusAccepted
	if err := s.db.Model(&inv).Update("status", models.StatusAccepted).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}
