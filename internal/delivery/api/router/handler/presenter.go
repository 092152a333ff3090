package handler

import (
	"tube/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthUserView is returned by register, login and the current-user endpoint.
type AuthUserView struct {
	Email              string `json:"email"`
	Token              string `json:"token"`
	Username           string `json:"username"`
	ChannelDescription string `json:"channelDescription"`
	Avatar             string `json:"avatar"`
}

// AccountView is the caller's own account after an update.
type AccountView struct {
	Email              string `json:"email"`
	Username           string `json:"username"`
	ChannelDescription string `json:"channelDescription"`
	Avatar             string `json:"avatar"`
	Cover              string `json:"cover"`
}

// ChannelView is a user as seen by another user.
type ChannelView struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Avatar             string    `json:"avatar"`
	Cover              string    `json:"cover"`
	ChannelDescription string    `json:"channelDescription"`
	SubscribersCount   int64     `json:"subscribersCount"`
	IsSubscribed       bool      `json:"isSubscribed"`
}

type userEnvelope[T any] struct {
	User T `json:"user"`
}

type subscriptionsEnvelope struct {
	Subscriptions []*entity.ChannelSummary `json:"subscriptions"`
}

func newAuthUserView(user *entity.User, token string) *AuthUserView {
	return &AuthUserView{
		Email:              user.Email,
		Token:              token,
		Username:           user.Username,
		ChannelDescription: user.ChannelDescription,
		Avatar:             user.Avatar,
	}
}

func newAccountView(user *entity.User) *AccountView {
	return &AccountView{
		Email:              user.Email,
		Username:           user.Username,
		ChannelDescription: user.ChannelDescription,
		Avatar:             user.Avatar,
		Cover:              user.Cover,
	}
}

func newChannelView(user *entity.User, isSubscribed bool) *ChannelView {
	return &ChannelView{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Cover:              user.Cover,
		ChannelDescription: user.ChannelDescription,
		SubscribersCount:   user.SubscribersCount,
		IsSubscribed:       isSubscribed,
	}
}
