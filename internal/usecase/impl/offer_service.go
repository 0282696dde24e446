package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "seedshare/internal/delivery/context"
	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	txManager      repository.TransactionManager
	offerRepo      repository.OfferRepository
	userRepo       repository.UserRepository
	addressRepo    repository.AddressRepository
	speciesRepo    repository.SpeciesRepository
	flowerShopRepo repository.FlowerShopRepository
	logger         *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OfferRepo      repository.OfferRepository
	UserRepo       repository.UserRepository
	AddressRepo    repository.AddressRepository
	SpeciesRepo    repository.SpeciesRepository
	FlowerShopRepo repository.FlowerShopRepository
	Logger         *slog.Logger
}

// NewOfferService creates a new offer service.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager:      params.TxManager,
		offerRepo:      params.OfferRepo,
		userRepo:       params.UserRepo,
		addressRepo:    params.AddressRepo,
		speciesRepo:    params.SpeciesRepo,
		flowerShopRepo: params.FlowerShopRepo,
		logger:         params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer resolves the referenced records, builds the offer and stores it
// when every rule holds.
func (srv *offerService) CreateOffer(ctx context.Context, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", input.UserID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer owner")
	}

	species, err := srv.speciesRepo.FindByID(ctx, input.SpeciesID)
	if errors.Is(err, repository.ErrSpeciesNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrSpeciesNotFound, "species %d", input.SpeciesID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find species")
	}

	address, err := srv.addressRepo.FindByID(ctx, input.AddressID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrAddressNotFound, "address %d", input.AddressID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != user.ID {
		srv.log(ctx).Warn("Offer address owned by another user",
			slog.Int64("userID", user.ID),
			slog.Int64("addressID", address.ID),
		)

		return nil, errors.Wrap(domainerrors.ErrForbidden, "address belongs to another user")
	}

	var shop *entity.FlowerShop
	if input.FlowerShopID != 0 {
		shop, err = srv.flowerShopRepo.FindByID(ctx, input.FlowerShopID)
		if errors.Is(err, repository.ErrFlowerShopNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrFlowerShopNotFound, "flower shop %d", input.FlowerShopID)
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find flower shop")
		}
		if shop.UserID != user.ID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "flower shop belongs to another user")
		}
	}

	offer := entity.NewOffer(entity.NewOfferParams{
		UnitPrice:       input.UnitPrice,
		RemainingAmount: input.Amount,
		User:            user,
		Species:         species,
		Description:     input.Description,
		FlowerShop:      shop,
		Address:         address,
		ProductAge:      input.ProductAge,
	})

	if msgs := offer.Validate(); len(msgs) > 0 {
		srv.log(ctx).Warn("Offer rejected by validation", slog.Int64("userID", user.ID), slog.Any("messages", msgs))

		return nil, domainerrors.NewValidationError(msgs)
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.log(ctx).Info("Offer created",
		slog.Int64("offerID", offer.ID),
		slog.String("type", offer.Type.String()),
		slog.Int("amount", offer.InitialAmount),
	)
	offer.User.CleanPassword()

	return offer, nil
}

// UpdateOffer replaces the description of an offer the caller owns.
func (srv *offerService) UpdateOffer(ctx context.Context, input *usecase.UpdateOfferInput) (*entity.Offer, error) {
	var updated *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		offer, err := lockOwnedOffer(ctx, offerRepo, input.OfferID, input.UserID)
		if err != nil {
			return err
		}

		offer.ApplyUpdate(&entity.Offer{Description: input.Description})
		if msgs := offer.Validate(); len(msgs) > 0 {
			return domainerrors.NewValidationError(msgs)
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}
		updated = offer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer update failed", slog.Int64("offerID", input.OfferID), slog.Any("error", err))

		return nil, err
	}

	updated.User.CleanPassword()

	return updated, nil
}

// ChangeOfferStatus moves an offer the caller owns to another known status.
func (srv *offerService) ChangeOfferStatus(ctx context.Context, input *usecase.ChangeOfferStatusInput) (*entity.Offer, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError([]string{entity.MsgOfferStatusUnknown})
	}

	var changed *entity.Offer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		offer, err := lockOwnedOffer(ctx, offerRepo, input.OfferID, input.UserID)
		if err != nil {
			return err
		}

		if err := offer.ChangeStatus(input.Status); err != nil {
			return domainerrors.NewValidationError([]string{entity.MsgOfferStatusUnknown})
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to change offer status")
		}
		changed = offer

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Offer status change failed", slog.Int64("offerID", input.OfferID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Offer status changed",
		slog.Int64("offerID", changed.ID),
		slog.String("status", changed.Status.String()),
	)
	changed.User.CleanPassword()

	return changed, nil
}

// RequestOffer reserves part of another user's active offer. The offer row
// stays locked until the request is stored.
func (srv *offerService) RequestOffer(ctx context.Context, input *usecase.RequestOfferInput) (*entity.Request, error) {
	var request *entity.Request

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		offer, err := findOffer(ctx, offerRepo.FindByIDForUpdate, input.OfferID)
		if err != nil {
			return err
		}
		if offer.OwnedBy(input.UserID) {
			return errors.Wrapf(domainerrors.ErrOwnOfferRequest, "offer %d", offer.ID)
		}

		if err := offer.Reserve(input.Amount); err != nil {
			return errors.Wrap(domainerrors.ErrOfferUnavailable, err.Error())
		}
		if err := offerRepo.Update(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to reserve offer amount")
		}

		request = &entity.Request{
			UserID:       input.UserID,
			OfferID:      offer.ID,
			Amount:       input.Amount,
			CreationDate: time.Now(),
		}

		return errors.Wrap(repoFactory.NewRequestRepository().Create(ctx, request), "failed to create request")
	})
	if err != nil {
		srv.log(ctx).Warn("Offer request failed",
			slog.Int64("offerID", input.OfferID),
			slog.Int64("userID", input.UserID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Offer requested",
		slog.Int64("offerID", request.OfferID),
		slog.Int64("requestID", request.ID),
		slog.Int("amount", request.Amount),
	)

	return request, nil
}

// GetOffer returns an offer with its owner redacted.
func (srv *offerService) GetOffer(ctx context.Context, offerID int64) (*entity.Offer, error) {
	offer, err := findOffer(ctx, srv.offerRepo.FindByID, offerID)
	if err != nil {
		return nil, err
	}

	if offer.User != nil {
		offer.User.CleanPassword()
	}

	return offer, nil
}

func findOffer(ctx context.Context, find func(context.Context, int64) (*entity.Offer, error), offerID int64) (*entity.Offer, error) {
	offer, err := find(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrOfferNotFound, "offer %d", offerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}

// lockOwnedOffer locks the offer and checks that userID owns it.
func lockOwnedOffer(ctx context.Context, offerRepo repository.OfferRepository, offerID, userID int64) (*entity.Offer, error) {
	offer, err := findOffer(ctx, offerRepo.FindByIDForUpdate, offerID)
	if err != nil {
		return nil, err
	}
	if !offer.OwnedBy(userID) {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "offer %d belongs to another user", offerID)
	}

	return offer, nil
}
