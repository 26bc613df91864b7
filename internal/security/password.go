// Package security provides the one-way password hashing pair used for
// stored credentials.
package security

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password using bcrypt. The salt is generated
// per call, so hashing the same plaintext twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored digest.
// A malformed digest simply fails the check.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
