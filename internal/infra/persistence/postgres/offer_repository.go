package postgres

import (
	"context"

	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/infra/persistence/model"
	"seedshare/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// offerRepository implements the domain.OfferRepository interface.
type offerRepository struct {
	q *query.Query
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		q: query.Use(db),
	}
}

// Create persists a new offer. Its user, species, address and flower shop must already be stored.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	err := repo.q.OfferModel.WithContext(ctx).
		Omit(field.AssociationFields).
		Create(offerM)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("offer references a missing record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves an offer with every association needed for validation.
func (repo *offerRepository) FindByID(ctx context.Context, id int64) (*entity.Offer, error) {
	return repo.find(repo.q.OfferModel.WithContext(ctx), id)
}

// FindByIDForUpdate locks the offer row for the rest of the transaction.
func (repo *offerRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Offer, error) {
	return repo.find(repo.q.OfferModel.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *offerRepository) find(do query.IOfferModelDo, id int64) (*entity.Offer, error) {
	o := repo.q.OfferModel
	offerM, err := do.
		Preload(o.User.Address).
		Preload(o.Species).
		Preload(o.FlowerShop.Address).
		Preload(o.Address).
		Where(o.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(offerM), nil
}

// Update writes the mutable columns of an offer.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	o := repo.q.OfferModel
	info, err := o.WithContext(ctx).
		Select(o.Description, o.RemainingAmount, o.Status).
		Where(o.ID.Eq(offer.ID)).
		Updates(fromOfferDomain(offer))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}
	if info.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// requestRepository implements the domain.RequestRepository interface.
type requestRepository struct {
	q *query.Query
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		q: query.Use(db),
	}
}

// Create persists a new request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := &model.RequestModel{
		UserID:       request.UserID,
		OfferID:      request.OfferID,
		Amount:       request.Amount,
		CreationDate: request.CreationDate,
	}

	if err := repo.q.RequestModel.WithContext(ctx).Create(requestM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID

	return nil
}

// FindByOffer retrieves the requests made against an offer, oldest first.
func (repo *requestRepository) FindByOffer(ctx context.Context, offerID int64) ([]*entity.Request, error) {
	r := repo.q.RequestModel
	requestModels, err := r.WithContext(ctx).
		Where(r.OfferID.Eq(offerID)).
		Order(r.ID).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find requests by offer")
	}

	return mapAll(requestModels, toRequestDomain), nil
}
