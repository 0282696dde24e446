package usecase

import (
	"context"

	"seedshare/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateOfferInput defines the data required to post an offer. An invalid
// UnitPrice means no price was given; FlowerShopID zero means no shop.
type CreateOfferInput struct {
	UserID       int64
	UnitPrice    decimal.NullDecimal
	Amount       int
	SpeciesID    int64
	AddressID    int64
	FlowerShopID int64
	Description  string
	ProductAge   int
}

// UpdateOfferInput carries the mutable fields of an offer.
type UpdateOfferInput struct {
	UserID      int64
	OfferID     int64
	Description string
}

// ChangeOfferStatusInput moves an offer to another status.
type ChangeOfferStatusInput struct {
	UserID  int64
	OfferID int64
	Status  entity.OfferStatus
}

// RequestOfferInput reserves part of an offer for the requesting user.
type RequestOfferInput struct {
	UserID  int64
	OfferID int64
	Amount  int
}

// OfferUsecase defines the offer lifecycle operations.
// Only the offer's owner may update it or change its status.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, input *CreateOfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, input *UpdateOfferInput) (*entity.Offer, error)
	ChangeOfferStatus(ctx context.Context, input *ChangeOfferStatusInput) (*entity.Offer, error)
	RequestOffer(ctx context.Context, input *RequestOfferInput) (*entity.Request, error)
	GetOffer(ctx context.Context, offerID int64) (*entity.Offer, error)
}
