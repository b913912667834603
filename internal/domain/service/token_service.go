package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is what a verified session token asserts.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating session JWTs.
type TokenService interface {
	// GenerateToken signs a session token for userID.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry. Failures are ErrTokenExpired or ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
