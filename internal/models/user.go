package models

import "time"

// User represents a registered account.
//
// Avatar holds the opaque serialized avatar configuration picked on the
// frontend; the backend never interprets it. ResetCode and ResetCodeExpires
// are only populated while a password reset is in flight and are cleared the
// moment a reset succeeds.
type User struct {
	ID               uint    `gorm:"primaryKey"`
	Username         string  `gorm:"size:50;unique;not null;index"`
	Email            string  `gorm:"size:255;unique;not null;index"`
	PasswordHash     string  `gorm:"size:255;not null"`
	Avatar           *string `gorm:"type:text"`
	ResetCode        *string `gorm:"size:16"`
	ResetCodeExpires *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
