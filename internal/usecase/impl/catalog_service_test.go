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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service        usecase.CatalogUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	addressRepo    *mockRepo.MockAddressRepository
	speciesRepo    *mockRepo.MockSpeciesRepository
	flowerShopRepo *mockRepo.MockFlowerShopRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		addressRepo:    mockRepo.NewMockAddressRepository(t),
		speciesRepo:    mockRepo.NewMockSpeciesRepository(t),
		flowerShopRepo: mockRepo.NewMockFlowerShopRepository(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		TxManager:      fx.txManager,
		UserRepo:       fx.userRepo,
		AddressRepo:    fx.addressRepo,
		SpeciesRepo:    fx.speciesRepo,
		FlowerShopRepo: fx.flowerShopRepo,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func newAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		Street:       "Rua das Flores",
		Number:       "120",
		Neighborhood: "Centro",
		City:         "Campinas",
		State:        "SP",
		PostalCode:   "13010000",
	}
}

func TestCatalogService_CreateSpecies(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.speciesRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Species")).
			Run(func(_ context.Context, species *entity.Species) { species.ID = 2 }).
			Return(nil)

		species, err := fx.service.CreateSpecies(context.Background(), &usecase.CreateSpeciesInput{
			CommonName:     "Ipê-amarelo",
			ScientificName: "Handroanthus albus",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2), species.ID)
	})

	t.Run("missing names", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateSpecies(context.Background(), &usecase.CreateSpeciesInput{})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{
			entity.MsgSpeciesCommonNameInvalid,
			entity.MsgSpeciesScientificNameInvalid,
		}, validationErr.Messages())
		fx.speciesRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_GetSpecies_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.speciesRepo.EXPECT().FindByID(mock.Anything, int64(2)).Return(nil, repository.ErrSpeciesNotFound)

	_, err := fx.service.GetSpecies(context.Background(), 2)

	assert.True(t, errors.Is(err, domainerrors.ErrSpeciesNotFound))
}

func TestCatalogService_CreateAddress(t *testing.T) {
	t.Run("first address becomes primary", func(t *testing.T) {
		fx := createTestCatalogService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		expectTransaction(fx.txManager, factory)

		txUserRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
		txAddressRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Address")).
			Run(func(_ context.Context, address *entity.Address) { address.ID = 4 }).
			Return(nil)
		txUserRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
				return user.Address != nil && user.Address.ID == 4
			})).
			Return(nil)

		address, err := fx.service.CreateAddress(context.Background(), &usecase.CreateAddressInput{
			UserID:  7,
			Address: newAddressInput(),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(4), address.ID)
		assert.Equal(t, int64(7), address.UserID)
	})

	t.Run("existing primary is kept", func(t *testing.T) {
		fx := createTestCatalogService(t)
		factory := mockRepo.NewMockRepositoryFactory(t)
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txAddressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		factory.EXPECT().NewAddressRepository().Return(txAddressRepo)
		expectTransaction(fx.txManager, factory)

		owner := newStoredUser(7)
		owner.Address = newStoredAddress(3, 7)
		txUserRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(owner, nil)
		txAddressRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Address")).Return(nil)

		_, err := fx.service.CreateAddress(context.Background(), &usecase.CreateAddressInput{
			UserID:  7,
			Address: newAddressInput(),
		})

		require.NoError(t, err)
		txUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("invalid state", func(t *testing.T) {
		fx := createTestCatalogService(t)
		input := newAddressInput()
		input.State = "XX"

		_, err := fx.service.CreateAddress(context.Background(), &usecase.CreateAddressInput{UserID: 7, Address: input})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{entity.MsgAddressStateInvalid}, validationErr.Messages())
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func newCreateFlowerShopInput() *usecase.CreateFlowerShopInput {
	return &usecase.CreateFlowerShopInput{
		UserID:    7,
		Name:      "Floricultura Jardim",
		CNPJ:      "11222333000181",
		AddressID: 3,
	}
}

func TestCatalogService_CreateFlowerShop(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredLegalPerson(7), nil)
		fx.addressRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newStoredAddress(3, 7), nil)
		fx.flowerShopRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.FlowerShop")).
			Run(func(_ context.Context, shop *entity.FlowerShop) { shop.ID = 5 }).
			Return(nil)

		shop, err := fx.service.CreateFlowerShop(context.Background(), newCreateFlowerShopInput())

		require.NoError(t, err)
		assert.Equal(t, int64(5), shop.ID)
		assert.Equal(t, int64(7), shop.UserID)
		assert.Equal(t, int64(3), shop.Address.ID)
	})

	t.Run("individual accounts cannot run a shop", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)

		_, err := fx.service.CreateFlowerShop(context.Background(), newCreateFlowerShopInput())

		assert.True(t, errors.Is(err, domainerrors.ErrLegalPersonRequired))
	})

	t.Run("address of another user", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredLegalPerson(7), nil)
		fx.addressRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newStoredAddress(3, 8), nil)

		_, err := fx.service.CreateFlowerShop(context.Background(), newCreateFlowerShopInput())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("invalid cnpj", func(t *testing.T) {
		fx := createTestCatalogService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredLegalPerson(7), nil)
		fx.addressRepo.EXPECT().FindByID(mock.Anything, int64(3)).Return(newStoredAddress(3, 7), nil)

		input := newCreateFlowerShopInput()
		input.CNPJ = "11222333000180"

		_, err := fx.service.CreateFlowerShop(context.Background(), input)

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{entity.MsgFlowerShopCNPJInvalid}, validationErr.Messages())
		fx.flowerShopRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
