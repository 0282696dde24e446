// Package postgres stores the marketplace in PostgreSQL through GORM.
package postgres

import (
	"context"

	"seedshare/internal/domain/repository"
	"seedshare/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside gorm's Transaction, which rolls back on error or
// panic. Errors from fn come back with their identity intact so callers can
// still match domain sentinels.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})

	return errors.WithStack(err)
}

// txRepositories builds repositories on the open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewAddressRepository() repository.AddressRepository {
	return NewAddressRepository(f.tx)
}

func (f txRepositories) NewOfferRepository() repository.OfferRepository {
	return NewOfferRepository(f.tx)
}

func (f txRepositories) NewRequestRepository() repository.RequestRepository {
	return NewRequestRepository(f.tx)
}
