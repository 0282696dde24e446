package impl

import (
	"context"
	"testing"

	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/domain/service"
	mockRepo "seedshare/internal/mocks/repository"
	mockSvc "seedshare/internal/mocks/service"
	"seedshare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      srv,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func newRegisterInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "Password123!",
		CPF:      testCPF,
		Address: &usecase.AddressInput{
			Street:       "Rua das Flores",
			Number:       "120",
			Neighborhood: "Centro",
			City:         "Campinas",
			State:        "SP",
			PostalCode:   "13010000",
		},
	}
}

func (fx userServiceFixtures) expectFreeKeys(input *usecase.RegisterUserInput) {
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByCPF(mock.Anything, input.CPF).Return(nil, repository.ErrUserNotFound)
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectFreeKeys(input)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	txAddressRepo := mockRepo.NewMockAddressRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	factory.EXPECT().NewAddressRepository().Return(txAddressRepo)

	txUserRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Nil(t, user.Address, "address is stored after its owner")
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = 7
		}).
		Return(nil)
	txAddressRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, address *entity.Address) {
			assert.Equal(t, int64(7), address.UserID)
			address.ID = 3
		}).
		Return(nil)
	txUserRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Address != nil && user.Address.ID == 3
		})).
		Return(nil)
	expectTransaction(fx.txManager, factory)

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.True(t, user.IsApproved)
	require.NotNil(t, user.Address)
	assert.Equal(t, int64(3), user.Address.ID)
}

func TestUserService_RegisterUser_WithoutAddress(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()
	input.Address = nil

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectFreeKeys(input)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	txUserRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
	expectTransaction(fx.txManager, factory)

	user, err := fx.service.RegisterUser(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, user.Address)
}

func TestUserService_RegisterUser_ValidationFailure(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()
	input.Password = "short"
	input.CPF = "11111111111"

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	user, err := fx.service.RegisterUser(context.Background(), input)

	require.Error(t, err)
	assert.Nil(t, user)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{entity.MsgUserPasswordInvalid, entity.MsgUserCPFInvalid}, validationErr.Messages())
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, input.Email).Return(newStoredUser(9), nil)
	fx.userRepo.EXPECT().FindByCPF(mock.Anything, input.CPF).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.RegisterUser(context.Background(), input)

	var conflictErr *domainerrors.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, []string{entity.MsgUserEmailInUse}, conflictErr.Messages())
	assert.Equal(t, 409, conflictErr.HTTPCode())
}

func TestUserService_RegisterUser_DuplicateRaceMapsToConflict(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectFreeKeys(input)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.Wrap(repository.ErrDuplicateCPF, "failed to create user during registration"))

	_, err := fx.service.RegisterUser(context.Background(), input)

	var conflictErr *domainerrors.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, []string{entity.MsgUserCPFInUse}, conflictErr.Messages())
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)
	input := newRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	_, err := fx.service.RegisterUser(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(fx userServiceFixtures)
		wantErr   error
		wantToken string
	}{
		{
			name: "success",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "maria@example.com").Return(newStoredUser(7), nil)
				fx.hasher.EXPECT().Check("Password123!", "stored-hash").Return(true)
				fx.tokenService.EXPECT().GenerateTokens(int64(7)).Return("access", "refresh", nil)
			},
			wantToken: "access",
		},
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "maria@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "maria@example.com").Return(newStoredUser(7), nil)
				fx.hasher.EXPECT().Check("Password123!", "stored-hash").Return(false)
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.setup(fx)

			output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
				Email:    "maria@example.com",
				Password: "Password123!",
			})

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, output)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, output.AccessToken)
			assert.Equal(t, "refresh", output.RefreshToken)
			assert.Empty(t, output.User.PasswordHash)
		})
	}
}

func TestUserService_RefreshTokens(t *testing.T) {
	t.Run("issues a new pair", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: 7, Type: service.TokenTypeRefresh}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
		fx.tokenService.EXPECT().GenerateTokens(int64(7)).Return("access-2", "refresh-2", nil)

		output, err := fx.service.RefreshTokens(context.Background(), "refresh")

		require.NoError(t, err)
		assert.Equal(t, "access-2", output.AccessToken)
		assert.Equal(t, "refresh-2", output.RefreshToken)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("bogus").Return(nil, errors.New("token is malformed"))

		_, err := fx.service.RefreshTokens(context.Background(), "bogus")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("account removed since issue", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: 7}, nil)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshTokens(context.Background(), "refresh")

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
		fx.hasher.EXPECT().Check("current-secret", "stored-hash").Return(true)
		fx.hasher.EXPECT().Hash("new-secret-123").Return("new-hash", nil)
		fx.userRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
				return user.PasswordHash == "new-hash"
			})).
			Return(nil)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			UserID:          7,
			CurrentPassword: "current-secret",
			NewPassword:     "new-secret-123",
		})

		require.NoError(t, err)
	})

	t.Run("current password mismatch", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
		fx.hasher.EXPECT().Check("guess", "stored-hash").Return(false)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			UserID:          7,
			CurrentPassword: "guess",
			NewPassword:     "new-secret-123",
		})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("new password too short", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
		fx.hasher.EXPECT().Check("current-secret", "stored-hash").Return(true)
		fx.hasher.EXPECT().Hash("short").Return("short-hash", nil)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{
			UserID:          7,
			CurrentPassword: "current-secret",
			NewPassword:     "short",
		})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{entity.MsgUserPasswordInvalid}, validationErr.Messages())
		fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_ChangeName(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)
		fx.userRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.ChangeName(context.Background(), &usecase.ChangeNameInput{UserID: 7, Name: "Maria S."})

		require.NoError(t, err)
		assert.Equal(t, "Maria S.", user.Name)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("empty name", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)

		_, err := fx.service.ChangeName(context.Background(), &usecase.ChangeNameInput{UserID: 7})

		var validationErr *domainerrors.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{entity.MsgUserNameInvalid}, validationErr.Messages())
	})
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("redacts the hash", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(7)).Return(newStoredUser(7), nil)

		user, err := fx.service.GetUser(context.Background(), 7)

		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(8)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUser(context.Background(), 8)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, int64(8)).Return(nil, errors.New("connection reset"))

		_, err := fx.service.GetUser(context.Background(), 8)

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
