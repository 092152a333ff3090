package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated by the application.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username           string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	Email              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Avatar             string    `gorm:"type:text"`
	Cover              string    `gorm:"type:text"`
	ChannelDescription string    `gorm:"type:text"`
	SubscribersCount   int64     `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
