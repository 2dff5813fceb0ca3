// Package service declares the infrastructure capabilities use cases depend on.
package service

// PasswordHasher turns plaintext passwords into one-way salted hashes.
type PasswordHasher interface {
	// Hash fails for inputs the algorithm cannot represent, such as bcrypt's
	// 72 byte ceiling.
	Hash(password string) (string, error)

	// Check reports whether password produced hash. Malformed hashes never match.
	Check(password, hash string) bool
}
