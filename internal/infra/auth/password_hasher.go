package auth

import (
	"golang.org/x/crypto/bcrypt"

	"sharecare/internal/domain/service"
)

// bcryptHasher implements the PasswordHasher interface with bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a PasswordHasher backed by bcrypt.
func NewBcryptHasher() service.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash generates a salted hash from a plaintext password.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Check compares a plaintext password with a hash to see if they match.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
