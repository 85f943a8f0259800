package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims defines the custom claims carried by admin session tokens.
type AdminClaims struct {
	Email string
	Role  string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating admin JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAdminToken creates a new session token for the admin console.
	GenerateAdminToken(email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*AdminClaims, error)

	// GetTokenDuration returns the configured session token lifetime.
	GetTokenDuration() time.Duration
}
