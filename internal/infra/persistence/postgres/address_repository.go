package postgres

import (
	"context"

	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type addressRepository struct {
	q *query.Query
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{q: query.Use(db)}
}

// Create stores an address for address.UserID. An unknown owner is reported
// as a missing user.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	row := fromAddressDomain(address)

	err := repo.q.AddressModel.WithContext(ctx).Create(row)
	switch {
	case err == nil:
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrUserNotFound.WrapMessage("address owner does not exist")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID, address.CreatedAt, address.UpdatedAt = row.ID, row.CreatedAt, row.UpdatedAt

	return nil
}

func (repo *addressRepository) FindByID(ctx context.Context, id int64) (*entity.Address, error) {
	a := repo.q.AddressModel
	row, err := a.WithContext(ctx).Where(a.ID.Eq(id)).First()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrAddressNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find address %d", id)
	}

	return toAddressDomain(row), nil
}

// FindByUser lists a user's addresses in creation order, so the first one is
// the address registered with the account.
func (repo *addressRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	a := repo.q.AddressModel
	rows, err := a.WithContext(ctx).Where(a.UserID.Eq(userID)).Order(a.ID).Find()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list addresses of user %d", userID)
	}

	return mapAll(rows, toAddressDomain), nil
}
