// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for generating and validating JWTs.
// The push-channel handshake and the REST middleware share one implementation
// so both transports trust the same identity.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID uuid.UUID, name string) (string, error)

	// ValidateToken checks the validity of a token string against the
	// access secret and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
