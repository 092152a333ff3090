package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
// UserID is decoded from the subject and never serialized on its own.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// GenerateToken creates a signed token naming userID as its subject.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	// Any failure is reported as domain errors.ErrInvalidToken.
	ValidateToken(tokenString string) (*Claims, error)
}
