package service

import (
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"time"

	"batalla/backend/internal/models"
	"batalla/backend/pkg/password"

	"gorm.io/gorm"
)

const (
	resetCodeLength = 6
	resetCodeTTL    = 15 * time.Minute
)

// Notifier delivers a reset code to a recipient. Delivery failure never rolls
// back the already-stored code.
type Notifier interface {
	Send(recipientEmail, code string) error
}

// ResetService runs the password-reset flow: short-lived numeric codes stored
// on the user row, delivered through the notifier.
type ResetService struct {
	users    *UserService
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

// NewResetService creates a ResetService. notifier may be nil when no mailer
// is configured; RequestReset then hands the code back to the caller.
func NewResetService(db *gorm.DB, users *UserService, notifier Notifier) *ResetService {
	return &ResetService{users: users, db: db, notifier: notifier, now: time.Now}
}

// RequestReset generates and stores a reset code for the account behind
// email. It succeeds whether or not the account exists, so responses cannot
// be used to enumerate accounts. A repeated request overwrites the previous
// code; only the latest one is valid.
//
// The returned code is non-empty only when no notifier is configured, a
// development affordance for running without a mail server. With a notifier
// active the code travels by mail alone.
func (s *ResetService) RequestReset(email string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}

	code, err := generateResetCode()
	if err != nil {
		return "", err
	}
	expires := s.now().UTC().Add(resetCodeTTL)

	err = s.db.Model(user).Updates(map[string]interface{}{
		"reset_code":         code,
		"reset_code_expires": expires,
	}).Error
	if err != nil {
		return "", err
	}

	if s.notifier == nil {
		return code, nil
	}
	if err := s.notifier.Send(user.Email, code); err != nil {
		// The code is already committed; the user can retry delivery by
		// requesting again.
		log.Printf("Failed to send reset code to %s: %v", user.Email, err)
	}
	return "", nil
}

// ResetPassword trades a valid code for a new password. The rehash and the
// code clearing commit together; there is no state where the password changed
// but the code still works.
func (s *ResetService) ResetPassword(code, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_code = ?", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetCode
		}
		return err
	}
	if user.ResetCodeExpires == nil || !s.now().UTC().Before(user.ResetCodeExpires.UTC()) {
		return ErrExpiredResetCode
	}

	digest, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&user).Updates(map[string]interface{}{
			"password_hash":      digest,
			"reset_code":         nil,
			"reset_code_expires": nil,
		}).Error
	})
}

// generateResetCode draws six digits from a cryptographically secure source.
func generateResetCode() (string, error) {
	digits := make([]byte, resetCodeLength)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
