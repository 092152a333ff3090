// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"tube/internal/domain/entity"
	"tube/internal/domain/repository"
	"tube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).Where(query, arg).Take(&userM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find user where %s", query)
	}

	return toUserDomain(&userM), nil
}

// Create assigns a UUIDv7 when the entity has no ID and copies the stored
// timestamps back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return repo.translateWriteError(ctx, err, user)
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes every profile column, including empty strings.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":            user.Username,
			"email":               user.Email,
			"password_hash":       user.PasswordHash,
			"avatar":              user.Avatar,
			"cover":               user.Cover,
			"channel_description": user.ChannelDescription,
			"updated_at":          now,
		})
	if result.Error != nil {
		return repo.translateWriteError(ctx, result.Error, user)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = now

	return nil
}

// IncrementSubscribers clamps at zero so a decrement racing a missing edge cannot go negative.
func (repo *userRepository) IncrementSubscribers(ctx context.Context, id uuid.UUID, delta int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("subscribers_count", gorm.Expr(
			"CASE WHEN subscribers_count + ? < 0 THEN 0 ELSE subscribers_count + ? END", delta, delta,
		))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscribers count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// translateWriteError maps unique index violations to the repository
// duplicate errors. When the driver does not name the index, the owner of
// the username is looked up to decide which one clashed.
func (repo *userRepository) translateWriteError(ctx context.Context, err error, user *entity.User) error {
	if valueTooLong(err) {
		return errors.WithStack(repository.ErrValueTooLong)
	}

	detail, ok := uniqueViolation(err)
	if !ok {
		return errors.Wrap(err, "failed to write user")
	}

	detail = strings.ToLower(detail)
	switch {
	case strings.Contains(detail, "email"):
		return repository.ErrDuplicateEmail
	case strings.Contains(detail, "username"):
		return repository.ErrDuplicateUsername
	}

	owner, findErr := repo.FindByUsername(ctx, user.Username)
	if findErr == nil && owner.ID != user.ID {
		return repository.ErrDuplicateUsername
	}

	return repository.ErrDuplicateEmail
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:                 userM.ID,
		Username:           userM.Username,
		Email:              userM.Email,
		PasswordHash:       userM.PasswordHash,
		Avatar:             userM.Avatar,
		Cover:              userM.Cover,
		ChannelDescription: userM.ChannelDescription,
		SubscribersCount:   userM.SubscribersCount,
		CreatedAt:          userM.CreatedAt,
		UpdatedAt:          userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		Avatar:             user.Avatar,
		Cover:              user.Cover,
		ChannelDescription: user.ChannelDescription,
		SubscribersCount:   user.SubscribersCount,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}
