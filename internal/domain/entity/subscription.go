package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge from a subscriber to a channel.
// At most one edge exists per (SubscriberID, ChannelID) pair.
type Subscription struct {
	ID           uuid.UUID
	SubscriberID uuid.UUID
	ChannelID    uuid.UUID
	CreatedAt    time.Time
}
