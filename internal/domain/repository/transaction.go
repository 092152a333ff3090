package repository

import "context"

// TransactionManager runs a unit of work atomically. Subscribing and
// unsubscribing use it so the edge and the channel counter change together.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	SubscriptionRepo() SubscriptionRepository
}
