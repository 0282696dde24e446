package repository

import (
	"context"

	"seedshare/internal/domain/entity"
	"seedshare/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// Create persists a new address owned by address.UserID.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindByUser retrieves every address registered by a user, oldest first.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Address, error)
}
