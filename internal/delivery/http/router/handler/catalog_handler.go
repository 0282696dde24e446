package handler

import (
	"log/slog"
	"net/http"

	"seedshare/internal/delivery/http/response"
	"seedshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves species, addresses and flower shops.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateSpeciesRequest represents the request body for a catalog species.
type CreateSpeciesRequest struct {
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	Description    string `json:"description"`
}

// CreateFlowerShopRequest represents the request body for a flower shop.
type CreateFlowerShopRequest struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	Description string `json:"description"`
	PhoneNumber string `json:"phone_number"`
	AddressID   int64  `json:"address_id" validate:"required,gt=0"`
}

// CreateSpecies adds a species to the catalog.
func (h *CatalogHandler) CreateSpecies(c echo.Context) error {
	var req CreateSpeciesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	species, err := h.catalogUC.CreateSpecies(c.Request().Context(), &usecase.CreateSpeciesInput{
		CommonName:     req.CommonName,
		ScientificName: req.ScientificName,
		Description:    req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, species)
}

// GetSpecies returns a species by id.
func (h *CatalogHandler) GetSpecies(c echo.Context) error {
	speciesID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	species, err := h.catalogUC.GetSpecies(c.Request().Context(), speciesID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, species)
}

// CreateAddress registers an address for the authenticated user.
func (h *CatalogHandler) CreateAddress(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req AddressRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	address, err := h.catalogUC.CreateAddress(c.Request().Context(), &usecase.CreateAddressInput{
		UserID:  userID,
		Address: *req.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// CreateFlowerShop registers a flower shop run by the authenticated legal person.
func (h *CatalogHandler) CreateFlowerShop(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req CreateFlowerShopRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	shop, err := h.catalogUC.CreateFlowerShop(c.Request().Context(), &usecase.CreateFlowerShopInput{
		UserID:      userID,
		Name:        req.Name,
		CNPJ:        req.CNPJ,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		AddressID:   req.AddressID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop)
}
