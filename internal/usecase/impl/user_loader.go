package impl

import (
	"context"
	"log/slog"

	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadUser reads through the profile cache when one is configured.
// Cache failures are logged and fall back to the repository.
func loadUser(ctx context.Context, userRepo repository.UserRepository, cache service.ProfileCache, logger *slog.Logger, id uuid.UUID) (*entity.User, error) {
	if cache != nil {
		cached, ok, err := cache.GetUser(ctx, id)
		if err != nil {
			logger.Warn("Profile cache read failed", slog.Any("userID", id), slog.Any("error", err))
		}
		if ok {
			return cached, nil
		}
	}

	user, err := userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if cache != nil {
		if err := cache.SetUser(ctx, user); err != nil {
			logger.Warn("Profile cache write failed", slog.Any("userID", id), slog.Any("error", err))
		}
	}

	return user, nil
}

func invalidateUser(ctx context.Context, cache service.ProfileCache, logger *slog.Logger, id uuid.UUID) {
	if cache == nil {
		return
	}

	if err := cache.InvalidateUser(ctx, id); err != nil {
		logger.Warn("Profile cache invalidation failed", slog.Any("userID", id), slog.Any("error", err))
	}
}
