package models

import "time"

// GameInvitation is a plain record of one friend inviting another to a game.
// The backend only stores and lists these; running the game is the frontend's
// business.
type GameInvitation struct {
	ID         uint             `gorm:"primaryKey"`
	SenderID   uint             `gorm:"not null;index"`
	ReceiverID uint             `gorm:"not null;index"`
	GameType   string           `gorm:"size:50;not null"`
	Status     FriendshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Sender   User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Receiver User `gorm:"foreignKey:ReceiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
