// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"sharecare/config"
	"sharecare/internal/domain/service"
)

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin == nil || cfg.Admin.JWTSecret == "" {
		return nil, errors.New("admin jwt secret must be provided")
	}

	ttl := cfg.Admin.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: cfg.Admin.JWTSecret,
		ttl:    ttl,
	}, nil
}

// GenerateAdminToken creates a new session token for the admin console.
func (s *jwtService) GenerateAdminToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.AdminClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	email, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)
	if role != "admin" {
		return nil, errors.New("token is not an admin token")
	}

	return &service.AdminClaims{Email: email, Role: role}, nil
}

// GetTokenDuration returns the configured session token lifetime.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.ttl
}
