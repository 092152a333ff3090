// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tube/internal/domain/entity"
	"tube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username unique index rejects a write.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail is returned when the email unique index rejects a write.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrValueTooLong is returned when a column rejects a value over its length.
	ErrValueTooLong = errors.New("value too long for column")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity. ID and timestamps are filled in.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable profile columns of an existing user.
	// It never touches SubscribersCount.
	Update(ctx context.Context, user *entity.User) error

	// IncrementSubscribers adds delta to the channel's counter, never going below zero.
	IncrementSubscribers(ctx context.Context, id uuid.UUID, delta int64) error
}
