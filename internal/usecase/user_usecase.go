// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Username           *string
	Email              *string
	Password           *string
	Avatar             *string
	Cover              *string
	ChannelDescription *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by register and login.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// ProfileOutput is a user as seen by a (possibly anonymous) viewer.
type ProfileOutput struct {
	User         *entity.User
	IsSubscribed bool
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// FindByUsername and FindByEmail return (nil, nil) when nobody matches.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByID may serve from the profile cache, where PasswordHash is empty.
	// Never check credentials against its result; use Login.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	CreateToken(userID uuid.UUID) (string, error)

	Register(ctx context.Context, input *CreateUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// Authenticate resolves a bearer token to its still-existing user.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
	// GetProfile loads userID; viewerID is nil for anonymous callers.
	GetProfile(ctx context.Context, viewerID *uuid.UUID, userID uuid.UUID) (*ProfileOutput, error)
}
