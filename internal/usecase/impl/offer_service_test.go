package impl

import (
	"context"
	"testing"

	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	mockRepo "seedshare/internal/mocks/repository"
	"seedshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service        usecase.OfferUsecase
	txManager      *mockRepo.MockTransactionManager
	offerRepo      *mockRepo.MockOfferRepository
	userRepo       *mockRepo.MockUserRepository
	addressRepo    *mockRepo.MockAddressRepository
	speciesRepo    *mockRepo.MockSpeciesRepository
	flowerShopRepo *mockRepo.MockFlowerShopRepository
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	fx := offerServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		offerRepo:      mockRepo.NewMockOfferRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		addressRepo:    mockRepo.NewMockAddressRepository(t),
		speciesRepo:    mockRepo.NewMockSpeciesRepository(t),
		flowerShopRepo: mockRepo.NewMockFlowerShopRepository(t),
	}
	fx.service = NewOfferService(OfferServiceParams{
		TxManager:      fx.txManager,
		OfferRepo:      fx.offerRepo,
		UserRepo:       fx.userRepo,
		AddressRepo:    fx.addressRepo,
		SpeciesRepo:    fx.speciesRepo,
		FlowerShopRepo: fx.flowerShopRepo,
		Logger:         newDiscardLogger(),
	})

	return fx
}

// expectLockedOffer wires a transaction whose offer repository returns offer.
func (fx offerServiceFixtures) expectLockedOffer(t *testing.T, offer *entity.Offer) (*mockRepo.MockRepositoryFactory, *mockRepo.MockOfferRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txOfferRepo := mockRepo.NewMockOfferRepository(t)
	factory.EXPECT().NewOfferRepository().Return(txOfferRepo)
	txOfferRepo.EXPECT().FindByIDForUpdate(mock.Anything, offer.ID).Return(offer, nil)
	expectTransaction(fx.txManager, factory)

	return factory, txOfferRepo
}

func newCreateOfferInput() *usecase.CreateOfferInput {
	return &usecase.CreateOfferInput{
		UserID:      7,
		Amount:      10,
		SpeciesID:   2,
		AddressID:   3,
		Description: "Mudas de ipê com seis meses",
		ProductAge:  6,
	}
}

func (fx offerServiceFixtures) expectReferences(owner *entity.User, addressOwner int64) {
	fx.userRepo.EXPECT().FindByID(mock.Anything, owner.ID).Return(owner, nil)
	fx.speciesRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(newStoredSpecies(2), nil)
	fx.addressRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newStoredAddress(3, addressOwner), nil)
}

func TestOfferService_CreateOffer_Donation(t *testing.T) {
	fx := createTestOfferService(t)
	fx.expectReferences(newStoredUser(7), 7)
	fx.offerRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Offer")).
		Run(func(_ context.Context, offer *entity.Offer) { offer.ID = 11 }).
		Return(nil)

	offer, err := fx.service.CreateOffer(context.Background(), newCreateOfferInput())

	require.NoError(t, err)
	assert.Equal(t, int64(11), offer.ID)
	assert.Equal(t, entity.OfferTypeDonation, offer.Type)
	assert.True(t, offer.UnitPrice.Decimal.IsZero())
	assert.Equal(t, 10, offer.InitialAmount)
	assert.Equal(t, entity.OfferStatusActive, offer.Status)
	assert.Empty(t, offer.User.PasswordHash)
}

func TestOfferService_CreateOffer_SaleWithFlowerShop(t *testing.T) {
	fx := createTestOfferService(t)
	owner := newStoredLegalPerson(7)
	fx.expectReferences(owner, 7)
	fx.flowerShopRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.FlowerShop{
		ID:      5,
		UserID:  7,
		Name:    "Floricultura Jardim",
		CNPJ:    "11222333000181",
		Address: newStoredAddress(3, 7),
	}, nil)
	fx.offerRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Offer")).Return(nil)

	input := newCreateOfferInput()
	input.UnitPrice = decimal.NewNullDecimal(decimal.RequireFromString("12.50"))
	input.FlowerShopID = 5

	offer, err := fx.service.CreateOffer(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, entity.OfferTypeSale, offer.Type)
	assert.Equal(t, "12.5", offer.UnitPrice.Decimal.String())
	require.NotNil(t, offer.FlowerShop)
	assert.Equal(t, int64(5), offer.FlowerShop.ID)
}

func TestOfferService_CreateOffer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx offerServiceFixtures)
		input   func(in *usecase.CreateOfferInput)
		wantErr error
	}{
		{
			name: "unknown user",
			setup: func(fx offerServiceFixtures) {
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
		},
		{
			name: "unknown species",
			setup: func(fx offerServiceFixtures) {
				fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
				fx.speciesRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(nil, repository.ErrSpeciesNotFound)
			},
			wantErr: domainerrors.ErrSpeciesNotFound,
		},
		{
			name: "address of another user",
			setup: func(fx offerServiceFixtures) {
				fx.expectReferences(newStoredUser(7), 8)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "flower shop of another user",
			setup: func(fx offerServiceFixtures) {
				fx.expectReferences(newStoredLegalPerson(7), 7)
				fx.flowerShopRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(&entity.FlowerShop{ID: 5, UserID: 8}, nil)
			},
			input:   func(in *usecase.CreateOfferInput) { in.FlowerShopID = 5 },
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "unknown flower shop",
			setup: func(fx offerServiceFixtures) {
				fx.expectReferences(newStoredLegalPerson(7), 7)
				fx.flowerShopRepo.EXPECT().FindByID(mock.Anything, int64(5)).Return(nil, repository.ErrFlowerShopNotFound)
			},
			input:   func(in *usecase.CreateOfferInput) { in.FlowerShopID = 5 },
			wantErr: domainerrors.ErrFlowerShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)
			tt.setup(fx)
			input := newCreateOfferInput()
			if tt.input != nil {
				tt.input(input)
			}

			offer, err := fx.service.CreateOffer(context.Background(), input)

			assert.Nil(t, offer)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOfferService_CreateOffer_ValidationFailure(t *testing.T) {
	fx := createTestOfferService(t)
	fx.expectReferences(newStoredUser(7), 7)

	input := newCreateOfferInput()
	input.Amount = 0
	input.Description = ""

	_, err := fx.service.CreateOffer(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{
		entity.MsgOfferDescriptionInvalid,
		entity.MsgOfferInitialAmountInvalid,
	}, validationErr.Messages())
	fx.offerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOfferService_UpdateOffer(t *testing.T) {
	t.Run("owner changes the description", func(t *testing.T) {
		fx := createTestOfferService(t)
		_, txOfferRepo := fx.expectLockedOffer(t, newStoredOffer(11, newStoredUser(7), 10))
		txOfferRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(offer *entity.Offer) bool {
				return offer.Description == "Mudas de ipê com um ano"
			})).
			Return(nil)

		offer, err := fx.service.UpdateOffer(context.Background(), &usecase.UpdateOfferInput{
			UserID:      7,
			OfferID:     11,
			Description: "Mudas de ipê com um ano",
		})

		require.NoError(t, err)
		assert.Equal(t, "Mudas de ipê com um ano", offer.Description)
		assert.Equal(t, 10, offer.RemainingAmount)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.expectLockedOffer(t, newStoredOffer(11, newStoredUser(7), 10))

		_, err := fx.service.UpdateOffer(context.Background(), &usecase.UpdateOfferInput{
			UserID:      8,
			OfferID:     11,
			Description: "Outra descrição",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("empty description", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.expectLockedOffer(t, newStoredOffer(11, newStoredUser(7), 10))

		_, err := fx.service.UpdateOffer(context.Background(), &usecase.UpdateOfferInput{UserID: 7, OfferID: 11})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{entity.MsgOfferDescriptionInvalid}, validationErr.Messages())
	})
}

func TestOfferService_ChangeOfferStatus(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		fx := createTestOfferService(t)
		_, txOfferRepo := fx.expectLockedOffer(t, newStoredOffer(11, newStoredUser(7), 10))
		txOfferRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Offer")).Return(nil)

		offer, err := fx.service.ChangeOfferStatus(context.Background(), &usecase.ChangeOfferStatusInput{
			UserID:  7,
			OfferID: 11,
			Status:  entity.OfferStatusCancelled,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OfferStatusCancelled, offer.Status)
	})

	t.Run("unknown status never opens a transaction", func(t *testing.T) {
		fx := createTestOfferService(t)

		_, err := fx.service.ChangeOfferStatus(context.Background(), &usecase.ChangeOfferStatusInput{
			UserID:  7,
			OfferID: 11,
			Status:  entity.OfferStatus(42),
		})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{entity.MsgOfferStatusUnknown}, validationErr.Messages())
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("missing offer", func(t *testing.T) {
		fx := createTestOfferService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txOfferRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().NewOfferRepository().Return(txOfferRepo)
		txOfferRepo.EXPECT().FindByIDForUpdate(mock.Anything, int64(11)).Return(nil, repository.ErrOfferNotFound)
		expectTransaction(fx.txManager, factory)

		_, err := fx.service.ChangeOfferStatus(context.Background(), &usecase.ChangeOfferStatusInput{
			UserID:  7,
			OfferID: 11,
			Status:  entity.OfferStatusFulfilled,
		})

		assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
	})
}

func TestOfferService_RequestOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)
	factory, txOfferRepo := fx.expectLockedOffer(t, newStoredOffer(11, newStoredUser(7), 5))
	txRequestRepo := mockRepo.NewMockRequestRepository(t)
	factory.EXPECT().NewRequestRepository().Return(txRequestRepo)

	txOfferRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(offer *entity.Offer) bool {
			return offer.RemainingAmount == 0 && offer.Status == entity.OfferStatusFulfilled
		})).
		Return(nil)
	txRequestRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Request")).
		Run(func(_ context.Context, request *entity.Request) { request.ID = 21 }).
		Return(nil)

	request, err := fx.service.RequestOffer(context.Background(), &usecase.RequestOfferInput{
		UserID:  8,
		OfferID: 11,
		Amount:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(21), request.ID)
	assert.Equal(t, int64(8), request.UserID)
	assert.Equal(t, int64(11), request.OfferID)
	assert.Equal(t, 5, request.Amount)
	assert.False(t, request.CreationDate.IsZero())
}

func TestOfferService_RequestOffer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		offer   func() *entity.Offer
		userID  int64
		amount  int
		wantErr error
	}{
		{
			name:    "own offer",
			offer:   func() *entity.Offer { return newStoredOffer(11, newStoredUser(7), 5) },
			userID:  7,
			amount:  1,
			wantErr: domainerrors.ErrOwnOfferRequest,
		},
		{
			name:    "more than remaining",
			offer:   func() *entity.Offer { return newStoredOffer(11, newStoredUser(7), 5) },
			userID:  8,
			amount:  6,
			wantErr: domainerrors.ErrOfferUnavailable,
		},
		{
			name: "cancelled offer",
			offer: func() *entity.Offer {
				offer := newStoredOffer(11, newStoredUser(7), 5)
				offer.Status = entity.OfferStatusCancelled

				return offer
			},
			userID:  8,
			amount:  1,
			wantErr: domainerrors.ErrOfferUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOfferService(t)
			_, txOfferRepo := fx.expectLockedOffer(t, tt.offer())

			request, err := fx.service.RequestOffer(context.Background(), &usecase.RequestOfferInput{
				UserID:  tt.userID,
				OfferID: 11,
				Amount:  tt.amount,
			})

			assert.Nil(t, request)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			txOfferRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestOfferService_GetOffer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.offerRepo.EXPECT().FindByID(mock.Anything, int64(11)).Return(newStoredOffer(11, newStoredUser(7), 5), nil)

		offer, err := fx.service.GetOffer(context.Background(), 11)

		require.NoError(t, err)
		assert.Equal(t, int64(11), offer.ID)
		assert.Empty(t, offer.User.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestOfferService(t)
		fx.offerRepo.EXPECT().FindByID(mock.Anything, int64(12)).Return(nil, repository.ErrOfferNotFound)

		_, err := fx.service.GetOffer(context.Background(), 12)

		assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
	})
}
