package service

import "time"

// WithClock overrides the time source used for the updated_at refresh.
func (s *FriendshipService) WithClock(now func() time.Time) *FriendshipService {
	s.now = now
	return s
}

// WithClock overrides the time source used for code expiry. Tests advance it
// past the reset window deterministically.
func (s *ResetService) WithClock(now func() time.Time) *ResetService {
	s.now = now
	return s
}
