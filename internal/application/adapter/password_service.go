// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// Hash hashes a plaintext password.
	Hash(password string) (string, error)

	// Compare compares a plaintext password against a stored hash.
	Compare(hash, password string) error
}
