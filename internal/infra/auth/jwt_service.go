// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"clubrelay/config"
	"clubrelay/internal/domain/service"
	"clubrelay/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenIssuer = "clubrelay"

// jwtService signs and validates admin bearer tokens with HS256.
type jwtService struct {
	secret []byte
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.AdminSecret == "" {
		return nil, errors.New("auth.adminSecret must be provided")
	}

	return &jwtService{secret: []byte(cfg.Auth.AdminSecret)}, nil
}

// GenerateToken creates a signed token for subject with the given roles.
func (s *jwtService) GenerateToken(subject string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    adminTokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign admin token")
	}

	return signed, nil
}

// ValidateToken checks the signature, issuer and expiry of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(adminTokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid admin token")
	}
	if !token.Valid {
		return nil, errors.New("invalid admin token")
	}

	return claims, nil
}
