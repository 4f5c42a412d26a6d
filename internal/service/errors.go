package service

import "errors"

// Sentinel errors surfaced by the services. Handlers map them to HTTP
// statuses with errors.Is; anything else is a server error.
var (
	// ErrEmailTaken and ErrUsernameTaken are deliberately distinct so
	// registration can say which field conflicts. Login stays generic.
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// ErrBadCredential covers both a wrong password and an unknown account
	// at the login boundary, so callers cannot probe which one failed.
	ErrBadCredential = errors.New("invalid email or password")

	ErrUserNotFound       = errors.New("user not found")
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrForbidden means the resource exists but the caller is not a party to it.
	ErrForbidden = errors.New("not a party to this resource")

	ErrSelfRequest      = errors.New("cannot send a friend request to yourself")
	ErrAlreadyPending   = errors.New("friend request already pending")
	ErrAlreadyFriends   = errors.New("users are already friends")
	ErrAlreadyProcessed = errors.New("request already processed")
	ErrNotFriends       = errors.New("users are not friends")

	ErrInvalidResetCode = errors.New("invalid reset code")
	ErrExpiredResetCode = errors.New("reset code expired")

	ErrInvalidUsername = errors.New("username may only contain letters, digits, _ and -")
)
