package impl

import (
	"context"
	"log/slog"

	deliverycontext "tube/internal/delivery/context"
	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/domain/repository"
	"tube/internal/domain/service"
	"tube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	cache            service.ProfileCache
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	Cache            service.ProfileCache `optional:"true"`
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		cache:            params.Cache,
		logger:           params.Logger,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Subscribe adds the edge and bumps the channel counter in one transaction.
// The counter only moves when the edge was actually inserted.
func (s *subscriptionService) Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.User, error) {
	if subscriberID == channelID {
		return nil, domainerrors.ErrSelfSubscription
	}

	channel, err := s.mutateEdge(ctx, channelID, func(repoFactory repository.RepositoryFactory) (bool, error) {
		inserted, err := repoFactory.SubscriptionRepo().Create(ctx, &entity.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		})
		if err != nil {
			return false, errors.Wrap(err, "failed to create subscription")
		}
		if !inserted {
			return false, nil
		}

		if err := repoFactory.UserRepo().IncrementSubscribers(ctx, channelID, 1); err != nil {
			return false, errors.Wrap(err, "failed to increment subscribers")
		}

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe")
	}

	return channel, nil
}

// Unsubscribe removes the edge if present. A missing edge leaves everything untouched.
func (s *subscriptionService) Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.User, error) {
	if subscriberID == channelID {
		return nil, domainerrors.ErrSelfSubscription
	}

	channel, err := s.mutateEdge(ctx, channelID, func(repoFactory repository.RepositoryFactory) (bool, error) {
		removed, err := repoFactory.SubscriptionRepo().Delete(ctx, subscriberID, channelID)
		if err != nil {
			return false, errors.Wrap(err, "failed to delete subscription")
		}
		if !removed {
			return false, nil
		}

		if err := repoFactory.UserRepo().IncrementSubscribers(ctx, channelID, -1); err != nil {
			return false, errors.Wrap(err, "failed to decrement subscribers")
		}

		return true, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unsubscribe")
	}

	return channel, nil
}

// mutateEdge checks the channel exists, runs change and returns the channel
// as committed. change reports whether the graph was modified.
func (s *subscriptionService) mutateEdge(
	ctx context.Context,
	channelID uuid.UUID,
	change func(repository.RepositoryFactory) (bool, error),
) (*entity.User, error) {
	var channel *entity.User
	var changed bool
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		var err error
		channel, err = userRepo.FindByID(ctx, channelID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find channel")
		}

		changed, err = change(repoFactory)
		if err != nil || !changed {
			return err
		}

		channel, err = userRepo.FindByID(ctx, channelID)
		if err != nil {
			return errors.Wrap(err, "failed to reload channel")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		invalidateUser(ctx, s.cache, s.log(ctx), channelID)
		s.log(ctx).Debug("Subscription graph changed",
			slog.Any("channelID", channelID),
			slog.Int64("subscribersCount", channel.SubscribersCount),
		)
	}

	return channel, nil
}

func (s *subscriptionService) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	exists, err := s.subscriptionRepo.Exists(ctx, subscriberID, channelID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check subscription")
	}

	return exists, nil
}

// ListSubscriptions never returns nil so the response always encodes as an array.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.ChannelSummary, error) {
	channels, err := s.subscriptionRepo.ListChannels(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}
	if channels == nil {
		channels = []*entity.ChannelSummary{}
	}

	return channels, nil
}
