package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// Rows are hard-deleted; the composite unique index keeps one edge per pair.
type SubscriptionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubscriberID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_edge,priority:1"`
	ChannelID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_edge,priority:2;index:idx_subscriptions_channel"`
	CreatedAt    time.Time  `gorm:"not null"`
	Subscriber   *UserModel `gorm:"foreignKey:SubscriberID;constraint:OnDelete:CASCADE"`
	Channel      *UserModel `gorm:"foreignKey:ChannelID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
