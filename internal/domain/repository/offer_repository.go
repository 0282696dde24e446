package repository

import (
	"context"

	"seedshare/internal/domain/entity"
	"seedshare/internal/errors"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the persistence operations for offers.
type OfferRepository interface {
	// Create persists a new offer and assigns its ID.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer with its user, species, flower shop and address loaded.
	FindByID(ctx context.Context, id int64) (*entity.Offer, error)

	// FindByIDForUpdate is FindByID with a row lock held until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Offer, error)

	// Update writes the mutable columns of an offer.
	Update(ctx context.Context, offer *entity.Offer) error
}

// RequestRepository persists reservations made against offers.
type RequestRepository interface {
	// Create persists a new request and assigns its ID.
	Create(ctx context.Context, request *entity.Request) error

	// FindByOffer retrieves the requests made against an offer, oldest first.
	FindByOffer(ctx context.Context, offerID int64) ([]*entity.Request, error)
}
