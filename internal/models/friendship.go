package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FriendshipStatus defines the state of a friendship edge.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the request was accepted and the users are friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// Friendship represents the edge between two users. It is created directed
// (requester -> addressee) but treated as symmetric once accepted. Rejection
// and removal delete the row outright, so a later re-request between the same
// pair starts clean. At most one row may exist per unordered pair; the
// migration adds a LEAST/GREATEST unique index to enforce that at the store.
type Friendship struct {
	ID          uint             `gorm:"primaryKey"`
	RequesterID uint             `gorm:"not null;index"`
	AddresseeID uint             `gorm:"not null;index"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Requester User `gorm:"foreignKey:RequesterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Addressee User `gorm:"foreignKey:AddresseeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// BeforeSave rejects any status outside the closed enum before it reaches the store.
func (f *Friendship) BeforeSave(tx *gorm.DB) error {
	switch f.Status {
	case StatusPending, StatusAccepted:
		return nil
	default:
		return fmt.Errorf("invalid friendship status %q", f.Status)
	}
}
