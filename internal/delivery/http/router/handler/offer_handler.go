package handler

import (
	"log/slog"
	"net/http"

	"seedshare/internal/delivery/http/response"
	"seedshare/internal/domain/entity"
	"seedshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer handlers.
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler.
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateOfferRequest represents the request body for posting an offer.
// A missing or null unit_price posts a donation.
type CreateOfferRequest struct {
	UnitPrice    decimal.NullDecimal `json:"unit_price"`
	Amount       int                 `json:"amount"`
	SpeciesID    int64               `json:"species_id" validate:"required,gt=0"`
	AddressID    int64               `json:"address_id" validate:"required,gt=0"`
	FlowerShopID int64               `json:"flower_shop_id" validate:"gte=0"`
	Description  string              `json:"description"`
	ProductAge   int                 `json:"product_age"`
}

// UpdateOfferRequest represents the request body for an offer update.
type UpdateOfferRequest struct {
	Description string `json:"description"`
}

// ChangeOfferStatusRequest represents the request body for a status change.
type ChangeOfferStatusRequest struct {
	Status int `json:"status" validate:"required"`
}

// RequestOfferRequest represents the request body for reserving part of an offer.
type RequestOfferRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// CreateOffer posts an offer for the authenticated user.
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}

	var req CreateOfferRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), &usecase.CreateOfferInput{
		UserID:       userID,
		UnitPrice:    req.UnitPrice,
		Amount:       req.Amount,
		SpeciesID:    req.SpeciesID,
		AddressID:    req.AddressID,
		FlowerShopID: req.FlowerShopID,
		Description:  req.Description,
		ProductAge:   req.ProductAge,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offer)
}

// GetOffer returns an offer by id.
func (h *OfferHandler) GetOffer(c echo.Context) error {
	offerID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), offerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// UpdateOffer replaces the description of one of the caller's offers.
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateOfferRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), &usecase.UpdateOfferInput{
		UserID:      userID,
		OfferID:     offerID,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// ChangeOfferStatus moves one of the caller's offers to another status.
func (h *OfferHandler) ChangeOfferStatus(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req ChangeOfferStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	offer, err := h.offerUC.ChangeOfferStatus(c.Request().Context(), &usecase.ChangeOfferStatusInput{
		UserID:  userID,
		OfferID: offerID,
		Status:  entity.OfferStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// RequestOffer reserves part of another user's offer.
func (h *OfferHandler) RequestOffer(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return invalidToken(c)
	}
	offerID, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req RequestOfferRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	request, err := h.offerUC.RequestOffer(c.Request().Context(), &usecase.RequestOfferInput{
		UserID:  userID,
		OfferID: offerID,
		Amount:  req.Amount,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request)
}
