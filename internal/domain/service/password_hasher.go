// Package service declares the stateless collaborators the use cases rely on:
// password hashing, token issuing and the profile cache.
package service

import "tube/internal/errors"

// MaxPasswordBytes is the longest password a PasswordHasher accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by Hash for passwords over MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher turns account passwords into salted one-way digests.
// Only digests are ever persisted.
type PasswordHasher interface {
	// Hash fails with ErrPasswordTooLong for passwords over MaxPasswordBytes.
	Hash(password string) (string, error)
	// Check reports whether password produces hash. Malformed hashes never match.
	Check(password, hash string) bool
}
