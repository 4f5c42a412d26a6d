package service

import (
	"errors"
	"regexp"

	"batalla/backend/internal/models"
	"batalla/backend/pkg/password"

	"gorm.io/gorm"
)

// Usernames: 3-50 chars, letters, digits, underscore and hyphen. Length is
// enforced at the handler binding; the charset rule lives here because the
// binding validator has no tag for it.
var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// UserService owns the user directory: registration, authentication lookups,
// profile and avatar updates, account deletion.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService on top of the given store.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileChanges carries the optional fields of a profile update. Nil fields
// are left untouched.
type ProfileChanges struct {
	Username *string
	Email    *string
	Password *string
}

// Register creates a new account. Email is checked for conflicts before
// username, matching the registration flow's field-specific errors. The
// plaintext password never reaches the store.
func (s *UserService) Register(username, email, plaintext string) (*models.User, error) {
	if !usernameRe.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	digest, err := password.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate resolves an email/password pair to a user. Both an unknown
// email and a wrong password come back as ErrBadCredential.
func (s *UserService) Authenticate(email, plaintext string) (*models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrBadCredential
		}
		return nil, err
	}
	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, ErrBadCredential
	}
	return user, nil
}

// FindByEmail returns the user with exactly this email.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername returns the user with exactly this username. Uniqueness and
// lookup are case-sensitive; only search matches loosely.
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with this id.
func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateAvatar stores the opaque avatar payload as-is.
func (s *UserService) UpdateAvatar(userID uint, avatar string) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	user.Avatar = &avatar
	if err := s.db.Model(user).Update("avatar", avatar).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies the supplied changes after re-verifying the caller's
// current password. Any change requires the password, avatar-independent
// fields included. New username/email must not collide with another account.
func (s *UserService) UpdateProfile(userID uint, changes ProfileChanges, currentPassword string) (*models.User, error) {
	user, err := s.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if !password.Verify(currentPassword, user.PasswordHash) {
		return nil, ErrBadCredential
	}

	updates := map[string]interface{}{}

	if changes.Username != nil && *changes.Username != user.Username {
		if !usernameRe.MatchString(*changes.Username) {
			return nil, ErrInvalidUsername
		}
		var other models.User
		err := s.db.Where("username = ? AND id <> ?", *changes.Username, userID).First(&other).Error
		if err == nil {
			return nil, ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["username"] = *changes.Username
	}

	if changes.Email != nil && *changes.Email != user.Email {
		var other models.User
		err := s.db.Where("email = ? AND id <> ?", *changes.Email, userID).First(&other).Error
		if err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = *changes.Email
	}

	if changes.Password != nil {
		digest, err := password.Hash(*changes.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = digest
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

// Delete removes the account after verifying the password. Friendship edges
// and game invitations referencing the user go with it, in one transaction.
func (s *UserService) Delete(userID uint, plaintext string) error {
	user, err := s.FindByID(userID)
	if err != nil {
		return err
	}
	if !password.Verify(plaintext, user.PasswordHash) {
		return ErrBadCredential
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requester_id = ? OR addressee_id = ?", userID, userID).
			Delete(&models.Friendship{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", userID, userID).
			Delete(&models.GameInvitation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
