// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"seedshare/internal/delivery/http/response"
	"seedshare/internal/domain/entity"
	"seedshare/internal/domain/service"
	"seedshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC       usecase.UserUsecase
	TokenService service.TokenService
	Logger       *slog.Logger
}

// UserHandler holds dependencies for account and authentication handlers.
type UserHandler struct {
	userUC       usecase.UserUsecase
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:       params.UserUC,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// AddressRequest is the postal address accepted by registration and address creation.
type AddressRequest struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	if r == nil {
		return nil
	}

	return &usecase.AddressInput{
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
	}
}

// RegisterUserRequest represents the request body for account registration.
// Field rules are enforced by the account itself.
type RegisterUserRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	CPF           string          `json:"cpf"`
	PhoneNumber   string          `json:"phone_number"`
	IsLegalPerson bool            `json:"is_legal_person"`
	Address       *AddressRequest `json:"address"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request body for a token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordRequest represents the request body for a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"`
}

// ChangeNameRequest represents the request body for a rename.
type ChangeNameRequest struct {
	Name string `json:"name"`
}

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *entity.User `json:"user"`
}

func (h *UserHandler) authResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(h.tokenService.GetAccessTokenDuration().Seconds()),
		User:         output.User,
	}
}

// RegisterUser handles the account registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		CPF:           req.CPF,
		PhoneNumber:   req.PhoneNumber,
		IsLegalPerson: req.IsLegalPerson,
		Address:       req.Address.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.authResponse(output))
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	output, err := h.userUC.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.authResponse(output))
}

// GetProfile returns the authenticated account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}

	return h.writeUser(c, userID)
}

// GetUser returns an account by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	return h.writeUser(c, userID)
}

func (h *UserHandler) writeUser(c echo.Context, userID int64) error {
	user, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ChangePassword replaces the authenticated account's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req ChangePasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	err := h.userUC.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeName renames the authenticated account.
func (h *UserHandler) ChangeName(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req ChangeNameRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.userUC.ChangeName(c.Request().Context(), &usecase.ChangeNameInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}
