// Package repository declares the storage ports the use cases depend on and
// the sentinel errors implementations return.
package repository

import (
	"context"
	"errors"

	"seedshare/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no account has the requested key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email unique index rejects a write.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateCPF is returned when the cpf unique index rejects a write.
	ErrDuplicateCPF = errors.New("cpf already registered")
	// ErrDuplicateAccount is returned when a unique index rejects a write without naming the key.
	ErrDuplicateAccount = errors.New("account key already registered")
)

// UserRepository stores accounts. Email and CPF are unique; a write that
// breaks either returns ErrDuplicateEmail, ErrDuplicateCPF or ErrDuplicateAccount.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with the primary address loaded.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCPF retrieves a single individual account by its tax id.
	FindByCPF(ctx context.Context, cpf string) (*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the mutable account fields and the primary address link.
	Update(ctx context.Context, user *entity.User) error
}
