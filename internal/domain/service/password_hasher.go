// Package service holds domain collaborators that are not entities: secret
// hashing, token issuing and account uniqueness checks.
package service

import "seedshare/internal/domain/entity"

// PasswordHasher hashes account secrets and verifies them at login.
type PasswordHasher interface {
	entity.SecretHasher

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
