package postgres

import (
	"context"

	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
// It initializes the repository with the GORM Gen query builder bound to db,
// and returns it as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID, preloading the primary address.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by id", repo.q.UserModel.ID.Eq(id))
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by email", repo.q.UserModel.Email.Eq(email))
}

// FindByCPF retrieves a single individual account by its tax id.
func (repo *userRepository) FindByCPF(ctx context.Context, cpf string) (*entity.User, error) {
	return repo.findOne(ctx, "failed to find user by cpf", repo.q.UserModel.CPF.Eq(cpf))
}

func (repo *userRepository) findOne(ctx context.Context, failure string, cond gen.Condition) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Preload(repo.q.UserModel.Address).
		Where(cond).
		First()
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, failure)
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(userM), nil
}

// Create persists a new user entity. The primary address, when set, must already be stored.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.q.UserModel.WithContext(ctx).
		Omit(field.AssociationFields).
		Create(userM)
	if err != nil {
		return translateUserWriteError(err, domainerrors.ErrUserCreationFailed, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	u := repo.q.UserModel
	info, err := u.WithContext(ctx).
		Select(u.Name, u.Email, u.CPF, u.PhotoID, u.PasswordHash, u.PhoneNumber, u.IsApproved, u.AddressID).
		Where(u.ID.Eq(user.ID)).
		Updates(fromUserDomain(user))
	if err != nil {
		return translateUserWriteError(err, domainerrors.ErrUserUpdateFailed, "failed to update user")
	}
	if info.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// translateUserWriteError converts PostgreSQL errors to domain errors.
func translateUserWriteError(err error, failed *domainerrors.BaseError, details string) error {
	if isUniqueConstraintViolation(err) {
		switch violatedColumn(err, "email", "cpf") {
		case "email":
			return repository.ErrDuplicateEmail
		case "cpf":
			return repository.ErrDuplicateCPF
		default:
			return repository.ErrDuplicateAccount
		}
	}
	if isNotNullConstraintViolation(err) {
		return failed.WrapMessage("missing required user information")
	}
	if isForeignKeyConstraintViolation(err) {
		return failed.WrapMessage("invalid foreign key reference")
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}
