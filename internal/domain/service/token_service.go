package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for admin tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating admin JWTs.
type TokenService interface {
	// GenerateToken creates a signed token for subject with the given roles.
	GenerateToken(subject string, roles []string, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
