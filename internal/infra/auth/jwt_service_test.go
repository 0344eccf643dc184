package auth

import (
	"testing"
	"time"

	"clubrelay/config"
	"clubrelay/internal/domain/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{AdminSecret: secret},
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_admin_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.GenerateToken("ops@example.com", []string{constants.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, []string{constants.RoleAdmin}, claims.Roles)
	assert.Equal(t, adminTokenIssuer, claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_ValidateRejects(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	expired, err := svc.GenerateToken("ops", []string{constants.RoleAdmin}, -time.Minute)
	require.NoError(t, err)
	foreign, err := other.GenerateToken("ops", []string{constants.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "ops",
		"iss": adminTokenIssuer,
	}).SignedString([]byte("secret-one"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: expired},
		{name: "signed with another secret", token: foreign},
		{name: "no expiry", token: noExpiry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
