// Package token issues and validates the signed bearer tokens used for
// authentication. Tokens are stateless: they carry the subject's email and an
// expiry instant, and there is no revocation list — logout is client-side
// token discard.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, malformed claims, or past its expiry.
var ErrInvalidToken = errors.New("invalid token")

// Service signs and verifies tokens with a shared HMAC secret. The secret is
// injected at construction; business code never reads it from the environment.
type Service struct {
	secret []byte
	now    func() time.Time
}

// NewService creates a token service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

// Issue creates a signed token for subject (the user's email) valid for ttl.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the token's subject.
// Attacker-supplied garbage always comes back as ErrInvalidToken, never a panic.
func (s *Service) Validate(tokenString string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// WithClock overrides the service's time source. Tests use this to step past
// expiry deterministically.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
