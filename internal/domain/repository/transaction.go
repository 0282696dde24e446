package repository

import "context"

// TransactionManager runs marketplace writes that span several tables, such as
// registering a user with an address or reserving an offer and recording the
// request, as one unit.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAddressRepository() AddressRepository
	NewOfferRepository() OfferRepository
	NewRequestRepository() RequestRepository
}
