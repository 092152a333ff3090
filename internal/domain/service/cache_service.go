package service

import (
	"context"

	"tube/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileCache keeps read-mostly copies of users keyed by ID.
// A miss is reported as (nil, false, nil). Cached users never carry PasswordHash.
type ProfileCache interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, bool, error)
	SetUser(ctx context.Context, user *entity.User) error
	InvalidateUser(ctx context.Context, id uuid.UUID) error
}
