package usecase

import (
	"context"

	"tube/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase manages the subscriber -> channel graph.
type SubscriptionUsecase interface {
	// Subscribe is idempotent and returns the channel with its current counter.
	Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.User, error)

	// Unsubscribe is a no-op when no edge exists and returns the channel.
	Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.User, error)

	IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// ListSubscriptions returns the followed channels in subscription order.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.ChannelSummary, error)
}
