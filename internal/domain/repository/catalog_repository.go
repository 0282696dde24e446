package repository

import (
	"context"

	"seedshare/internal/domain/entity"
	"seedshare/internal/errors"
)

var (
	// ErrSpeciesNotFound is returned when a species is not found.
	ErrSpeciesNotFound = errors.New("species not found")
	// ErrFlowerShopNotFound is returned when a flower shop is not found.
	ErrFlowerShopNotFound = errors.New("flower shop not found")
)

// SpeciesRepository defines the persistence operations for the species catalog.
type SpeciesRepository interface {
	Create(ctx context.Context, species *entity.Species) error
	FindByID(ctx context.Context, id int64) (*entity.Species, error)
}

// FlowerShopRepository defines the persistence operations for flower shops.
type FlowerShopRepository interface {
	// Create persists a new flower shop. The shop's address must already exist.
	Create(ctx context.Context, shop *entity.FlowerShop) error

	// FindByID retrieves a flower shop with its address loaded.
	FindByID(ctx context.Context, id int64) (*entity.FlowerShop, error)
}
