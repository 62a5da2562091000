// Package service defines capability interfaces the use cases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes and verifies the seed account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}
