package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's id.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the signature (and expiry, when the token has
	// one) of tokenString and extracts its claims.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded contents of a validated token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"id"`

	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"` // zero for tokens that never expire
	ID        string    `json:"jti,omitempty"`
}
