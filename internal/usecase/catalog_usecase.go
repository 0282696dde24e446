package usecase

import (
	"context"

	"seedshare/internal/domain/entity"
)

// CreateSpeciesInput defines a new catalog species.
type CreateSpeciesInput struct {
	CommonName     string
	ScientificName string
	Description    string
}

// CreateAddressInput registers an address for a user.
type CreateAddressInput struct {
	UserID  int64
	Address AddressInput
}

// CreateFlowerShopInput registers a flower shop at one of the owner's addresses.
type CreateFlowerShopInput struct {
	UserID      int64
	Name        string
	CNPJ        string
	Description string
	PhoneNumber string
	AddressID   int64
}

// CatalogUsecase manages the reference data offers point at.
type CatalogUsecase interface {
	CreateSpecies(ctx context.Context, input *CreateSpeciesInput) (*entity.Species, error)
	GetSpecies(ctx context.Context, speciesID int64) (*entity.Species, error)
	CreateAddress(ctx context.Context, input *CreateAddressInput) (*entity.Address, error)
	CreateFlowerShop(ctx context.Context, input *CreateFlowerShopInput) (*entity.FlowerShop, error)
}
