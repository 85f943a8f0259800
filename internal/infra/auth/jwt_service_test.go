package auth

import (
	"testing"
	"time"

	"sharecare/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			Email:     "admin@sharecare.app",
			JWTSecret: "test_admin_secret_key_very_long_for_testing",
			TokenTTL:  time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.GenerateAdminToken("admin@sharecare.app")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@sharecare.app", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Admin.JWTSecret = "a_completely_different_secret_key"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := jwtService.GenerateAdminToken("admin@sharecare.app")
	require.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Admin.JWTSecret = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "admin jwt secret must be provided")
}

func TestJWTService_DefaultTokenDuration(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Admin.TokenTTL = 0

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, jwtService.GetTokenDuration())
}
