package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tube/internal/domain/repository"
	mockRepo "tube/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// expectTransaction makes txManager run its callback once against a factory
// that hands out the given repositories.
func expectTransaction(
	t *testing.T,
	txManager *mockRepo.MockTransactionManager,
	userRepo repository.UserRepository,
	subscriptionRepo repository.SubscriptionRepository,
) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().SubscriptionRepo().Return(subscriptionRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
