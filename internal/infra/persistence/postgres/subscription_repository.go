package postgres

import (
	"context"

	"tube/internal/domain/entity"
	"tube/internal/domain/repository"
	"tube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create relies on the edge unique index: a concurrent or repeated insert
// of the same pair affects no rows and reports false.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) (bool, error) {
	if subscription.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return false, errors.Wrap(err, "failed to generate subscription id")
		}
		subscription.ID = id
	}

	subM := &model.SubscriptionModel{
		ID:           subscription.ID,
		SubscriberID: subscription.SubscriberID,
		ChannelID:    subscription.ChannelID,
		CreatedAt:    subscription.CreatedAt,
	}
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "subscriber_id"}, {Name: "channel_id"}},
			DoNothing: true,
		}).
		Omit(clause.Associations).
		Create(subM)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to create subscription")
	}

	subscription.CreatedAt = subM.CreatedAt

	return result.RowsAffected > 0, nil
}

func (repo *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.SubscriptionModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete subscription")
	}

	return result.RowsAffected > 0, nil
}

func (repo *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check subscription")
	}

	return count > 0, nil
}

type channelRow struct {
	ID       uuid.UUID
	Username string
	Avatar   string
}

// ListChannels orders by edge creation, ties broken by the time-ordered edge ID.
func (repo *subscriptionRepository) ListChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error) {
	var rows []channelRow
	err := repo.db.WithContext(ctx).
		Table(model.SubscriptionModel{}.TableName()+" AS s").
		Select("u.id AS id, u.username AS username, u.avatar AS avatar").
		Joins("JOIN "+model.UserModel{}.TableName()+" AS u ON u.id = s.channel_id").
		Where("s.subscriber_id = ?", subscriberID).
		Order("s.created_at ASC, s.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	return lo.Map(rows, func(row channelRow, _ int) *entity.ChannelSummary {
		return &entity.ChannelSummary{ID: row.ID, Username: row.Username, Avatar: row.Avatar}
	}), nil
}
