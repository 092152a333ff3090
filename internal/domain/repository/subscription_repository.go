package repository

import (
	"context"

	"tube/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository defines the persistence operations of the subscription graph.
type SubscriptionRepository interface {
	// Create inserts the edge unless it already exists and reports whether a row was written.
	Create(ctx context.Context, subscription *entity.Subscription) (bool, error)

	// Delete removes the edge and reports whether a row was removed.
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// Exists reports whether subscriberID currently subscribes to channelID.
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// ListChannels returns the channels subscriberID follows, oldest edge first.
	ListChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.ChannelSummary, error)
}
