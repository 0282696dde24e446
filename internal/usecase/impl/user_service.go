// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "seedshare/internal/delivery/context"
	"seedshare/internal/domain/entity"
	domainerrors "seedshare/internal/domain/errors"
	"seedshare/internal/domain/repository"
	"seedshare/internal/domain/service"
	"seedshare/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	conflicts    *service.AccountConflicts
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		conflicts:    service.NewAccountConflicts(params.UserRepo, repository.ErrUserNotFound),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser builds and validates the account, checks its unique keys, then
// stores the user and its optional address in one transaction.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration",
		slog.String("email", input.Email),
		slog.Bool("isLegalPerson", input.IsLegalPerson),
	)

	user, err := entity.NewUser(srv.hasher, entity.NewUserParams{
		CPF:           input.CPF,
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		IsLegalPerson: input.IsLegalPerson,
		Address:       input.Address.ToEntity(0),
		PhoneNumber:   input.PhoneNumber,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if msgs := user.Validate(); len(msgs) > 0 {
		srv.log(ctx).Warn("Registration rejected by validation", slog.String("email", input.Email), slog.Any("messages", msgs))

		return nil, domainerrors.NewValidationError(msgs)
	}

	if err := srv.checkConflicts(ctx, user); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return persistNewUser(ctx, repoFactory, user)
	})
	if err != nil {
		if conflictErr := srv.translateDuplicate(ctx, user, err); conflictErr != nil {
			return nil, conflictErr
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", user.ID))
	user.CleanPassword()

	return user, nil
}

// persistNewUser stores the user first so the address can reference its owner,
// then links the address back as the primary one.
func persistNewUser(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) error {
	userRepo := repoFactory.NewUserRepository()
	address := user.Address
	user.Address = nil

	if err := userRepo.Create(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}
	if address == nil {
		return nil
	}

	address.UserID = user.ID
	if err := repoFactory.NewAddressRepository().Create(ctx, address); err != nil {
		return errors.Wrap(err, "failed to create address during registration")
	}

	user.Address = address
	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to link primary address")
	}

	return nil
}

// checkConflicts reports unique keys already held by another account.
func (srv *userService) checkConflicts(ctx context.Context, user *entity.User) error {
	conflicts, err := srv.conflicts.Check(ctx, user)
	if err != nil {
		srv.log(ctx).Error("Failed to check account conflicts", slog.Any("error", err))

		return errors.Wrap(err, "failed to check account conflicts")
	}
	if len(conflicts) > 0 {
		srv.log(ctx).Warn("Account keys already registered", slog.String("email", user.Email), slog.Any("messages", conflicts))

		return domainerrors.NewConflictError(conflicts)
	}

	return nil
}

// translateDuplicate maps a unique index rejection that raced past
// checkConflicts to the conflict error. It returns nil for other errors.
func (srv *userService) translateDuplicate(ctx context.Context, user *entity.User, err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.NewConflictError([]string{entity.MsgUserEmailInUse})
	case errors.Is(err, repository.ErrDuplicateCPF):
		return domainerrors.NewConflictError([]string{entity.MsgUserCPFInUse})
	case errors.Is(err, repository.ErrDuplicateAccount):
		if conflictErr := srv.checkConflicts(ctx, user); conflictErr != nil {
			return conflictErr
		}

		return domainerrors.NewConflictError([]string{entity.MsgUserEmailInUse})
	default:
		return nil
	}
}

// Login checks the credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Int64("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issueTokens(ctx, user)
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Rejected refresh token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}

	user, err := srv.findUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(ctx, user)
}

func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	user.CleanPassword()

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// ChangePassword verifies the current secret before storing the new one.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	user, err := srv.findUser(ctx, input.UserID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.Int64("userID", user.ID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
	}

	if err := user.ChangePassword(srv.hasher, input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if msgs := user.Validate(); len(msgs) > 0 {
		return domainerrors.NewValidationError(msgs)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("userID", user.ID))

	return nil
}

// ChangeName renames the account and returns it redacted.
func (srv *userService) ChangeName(ctx context.Context, input *usecase.ChangeNameInput) (*entity.User, error) {
	user, err := srv.findUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	if msgs := user.Validate(); len(msgs) > 0 {
		return nil, domainerrors.NewValidationError(msgs)
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to rename user")
	}

	user.CleanPassword()

	return user, nil
}

// GetUser returns the redacted account.
func (srv *userService) GetUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.CleanPassword()

	return user, nil
}

func (srv *userService) findUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrUserNotFound, "user %d", userID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
