package postgres

import (
	"context"

	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
)

type speciesRepository struct {
	q *query.Query
}

// NewSpeciesRepository is the constructor for speciesRepository.
func NewSpeciesRepository(db *gorm.DB) repository.SpeciesRepository {
	return &speciesRepository{q: query.Use(db)}
}

func (repo *speciesRepository) Create(ctx context.Context, species *entity.Species) error {
	speciesM := fromSpeciesDomain(species)

	if err := repo.q.SpeciesModel.WithContext(ctx).Create(speciesM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create species")
	}

	species.ID = speciesM.ID
	species.CreatedAt = speciesM.CreatedAt
	species.UpdatedAt = speciesM.UpdatedAt

	return nil
}

func (repo *speciesRepository) FindByID(ctx context.Context, id int64) (*entity.Species, error) {
	s := repo.q.SpeciesModel
	speciesM, err := s.WithContext(ctx).Where(s.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpeciesNotFound
		}

		return nil, errors.Wrap(err, "failed to find species by id")
	}

	return toSpeciesDomain(speciesM), nil
}

type flowerShopRepository struct {
	q *query.Query
}

// NewFlowerShopRepository is the constructor for flowerShopRepository.
func NewFlowerShopRepository(db *gorm.DB) repository.FlowerShopRepository {
	return &flowerShopRepository{q: query.Use(db)}
}

func (repo *flowerShopRepository) Create(ctx context.Context, shop *entity.FlowerShop) error {
	shopM := fromFlowerShopDomain(shop)

	err := repo.q.FlowerShopModel.WithContext(ctx).
		Omit(field.AssociationFields).
		Create(shopM)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressNotFound.WrapMessage("flower shop references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create flower shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *flowerShopRepository) FindByID(ctx context.Context, id int64) (*entity.FlowerShop, error) {
	f := repo.q.FlowerShopModel
	shopM, err := f.WithContext(ctx).Preload(f.Address).Where(f.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFlowerShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find flower shop by id")
	}

	return toFlowerShopDomain(shopM), nil
}
