package postgres

import (
	"context"

	"tube/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns a TransactionManager over db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute delegates to gorm's Transaction, which rolls back when fn fails
// or panics. Errors from fn come back unchanged so callers can match them.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Wrap(err, "user store transaction failed")
	}

	return err
}

// txRepositories binds every repository to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) UserRepo() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) SubscriptionRepo() repository.SubscriptionRepository {
	return NewSubscriptionRepository(r.tx)
}
