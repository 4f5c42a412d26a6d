// Package password wraps bcrypt hashing so callers never touch raw digests.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of the given password. The digest
// differs between calls for the same input; Verify is the only way to check it.
func Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches the stored digest. A malformed
// digest is treated as a mismatch, never an error.
func Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
