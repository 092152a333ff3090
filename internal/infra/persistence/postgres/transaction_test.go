package postgres

import (
	"context"
	"testing"

	"tube/internal/domain/entity"
	"tube/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.SubscriptionRepo().Create(ctx, &entity.Subscription{SubscriberID: a.ID, ChannelID: b.ID}); err != nil {
			return err
		}

		return f.UserRepo().IncrementSubscribers(ctx, b.ID, 1)
	})
	require.NoError(t, err)

	channel, err := NewUserRepository(db).FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, channel.SubscribersCount)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.SubscriptionRepo().Create(ctx, &entity.Subscription{SubscriberID: a.ID, ChannelID: b.ID}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := NewSubscriptionRepository(db).Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	a := seedUser(t, db, "a")

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.UserRepo().IncrementSubscribers(ctx, a.ID, 3); err != nil {
				return err
			}
			panic("boom")
		})
	})

	stored, err := NewUserRepository(db).FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.SubscribersCount)
}
