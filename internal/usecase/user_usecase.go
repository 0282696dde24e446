// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"seedshare/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries the fields of a postal address.
type AddressInput struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string
}

// ToEntity builds an unsaved address owned by userID.
func (in *AddressInput) ToEntity(userID int64) *entity.Address {
	if in == nil {
		return nil
	}

	return &entity.Address{
		UserID:       userID,
		Street:       in.Street,
		Number:       in.Number,
		Complement:   in.Complement,
		Neighborhood: in.Neighborhood,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
	}
}

// RegisterUserInput defines the data required to register a new account.
// CPF is ignored for legal persons.
type RegisterUserInput struct {
	Name          string
	Email         string
	Password      string
	CPF           string
	PhoneNumber   string
	IsLegalPerson bool
	Address       *AddressInput
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ChangePasswordInput replaces the secret of an account after checking the current one.
type ChangePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// ChangeNameInput renames an account.
type ChangeNameInput struct {
	UserID int64
	Name   string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful login or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
// Every returned account has its password hash removed.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	ChangeName(ctx context.Context, input *ChangeNameInput) (*entity.User, error)
	GetUser(ctx context.Context, userID int64) (*entity.User, error)
}
