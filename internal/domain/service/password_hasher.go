// Package service declares the adapters the usecases rely on: tokens, hashing,
// mail, events, QR tickets, geo math and validation.
package service

// PasswordHasher hashes credentials for storage and checks login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches the stored hash. Any comparison error is a mismatch.
	Check(password, hash string) bool
}
