// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in, publish a channel and subscribe to
// other channels. Every user is also a channel.
type User struct {
	ID                 uuid.UUID // Server-generated, time-ordered identifier.
	Username           string    // Unique, case-sensitive.
	Email              string    // Unique, used as the login identifier.
	PasswordHash       string    // Never leaves the service layer.
	Avatar             string
	Cover              string
	ChannelDescription string
	SubscribersCount   int64 // Maintained only by subscribe/unsubscribe.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ChannelSummary is the channel side of a subscription edge as shown in
// a subscriber's list.
type ChannelSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Avatar   string    `json:"avatar"`
}
