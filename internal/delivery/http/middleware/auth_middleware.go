package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sharecare/internal/domain/service"
)

// Context keys set by the auth middlewares.
const (
	ContextKeyUID        = "uid"
	ContextKeyAdminEmail = "adminEmail"
)

// AuthMiddleware provides middleware for user identity and admin sessions.
//
// User identity is the raw uid carried as a bearer token; the upstream
// identity provider has already authenticated the mobile client and the
// gateway strips unverified traffic. Admin sessions use a signed JWT.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate extracts the caller's uid from the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := bearerToken(c)
		if !ok || uid == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing or malformed"})
		}

		c.Set(ContextKeyUID, uid)

		return next(c)
	}
}

// AuthenticateAdmin validates the admin session token.
func (m *AuthMiddleware) AuthenticateAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing or malformed"})
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyAdminEmail, claims.Email)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return "", false
	}

	return strings.TrimSpace(token), true
}
