package impl

import (
	"context"
	"log/slog"

	deliverycontext "seedshare/internal/delivery/context"
	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	addressRepo    repository.AddressRepository
	speciesRepo    repository.SpeciesRepository
	flowerShopRepo repository.FlowerShopRepository
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	AddressRepo    repository.AddressRepository
	SpeciesRepo    repository.SpeciesRepository
	FlowerShopRepo repository.FlowerShopRepository
	Logger         *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		addressRepo:    params.AddressRepo,
		speciesRepo:    params.SpeciesRepo,
		flowerShopRepo: params.FlowerShopRepo,
		logger:         params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) CreateSpecies(ctx context.Context, input *usecase.CreateSpeciesInput) (*entity.Species, error) {
	species := &entity.Species{
		CommonName:     input.CommonName,
		ScientificName: input.ScientificName,
		Description:    input.Description,
	}
	if msgs := species.Validate(); len(msgs) > 0 {
		return nil, domainerrors.NewValidationError(msgs)
	}

	if err := srv.speciesRepo.Create(ctx, species); err != nil {
		srv.log(ctx).Error("Failed to create species", slog.String("commonName", input.CommonName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create species")
	}

	srv.log(ctx).Info("Species created", slog.Int64("speciesID", species.ID))

	return species, nil
}

func (srv *catalogService) GetSpecies(ctx context.Context, speciesID int64) (*entity.Species, error) {
	species, err := srv.speciesRepo.FindByID(ctx, speciesID)
	if errors.Is(err, repository.ErrSpeciesNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrSpeciesNotFound, "species %d", speciesID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find species")
	}

	return species, nil
}

// CreateAddress stores an address for the user. The first address a user
// registers becomes the primary one.
func (srv *catalogService) CreateAddress(ctx context.Context, input *usecase.CreateAddressInput) (*entity.Address, error) {
	address := input.Address.ToEntity(input.UserID)
	if msgs := address.Validate(); len(msgs) > 0 {
		return nil, domainerrors.NewValidationError(msgs)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", input.UserID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find address owner")
		}

		if err := repoFactory.NewAddressRepository().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
		if user.Address != nil {
			return nil
		}

		user.Address = address

		return errors.Wrap(userRepo.Update(ctx, user), "failed to set primary address")
	})
	if err != nil {
		srv.log(ctx).Warn("Address creation failed", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return address, nil
}

// CreateFlowerShop registers a shop run by a legal person at one of their addresses.
func (srv *catalogService) CreateFlowerShop(ctx context.Context, input *usecase.CreateFlowerShopInput) (*entity.FlowerShop, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", input.UserID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find flower shop owner")
	}
	if !user.IsLegalPerson {
		return nil, errors.Wrapf(domainerrors.ErrLegalPersonRequired, "user %d", user.ID)
	}

	address, err := srv.addressRepo.FindByID(ctx, input.AddressID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrAddressNotFound, "address %d", input.AddressID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}
	if address.UserID != user.ID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "address belongs to another user")
	}

	shop := &entity.FlowerShop{
		UserID:      user.ID,
		Name:        input.Name,
		CNPJ:        input.CNPJ,
		Description: input.Description,
		PhoneNumber: input.PhoneNumber,
		Address:     address,
	}
	if msgs := shop.Validate(); len(msgs) > 0 {
		return nil, domainerrors.NewValidationError(msgs)
	}

	if err := srv.flowerShopRepo.Create(ctx, shop); err != nil {
		srv.log(ctx).Error("Failed to create flower shop", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create flower shop")
	}

	srv.log(ctx).Info("Flower shop created", slog.Int64("flowerShopID", shop.ID), slog.Int64("userID", user.ID))

	return shop, nil
}
