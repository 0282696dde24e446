package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Validation messages reported by Offer.Validate.
const (
	MsgOfferDescriptionInvalid      = "Descrição inválida."
	MsgOfferProductAgeInvalid       = "Idade da muda inválida."
	MsgOfferSalePriceInvalid        = "Preço unitário inválido para uma venda."
	MsgOfferDonationPriceInvalid    = "Preço unitário inválido para uma doação."
	MsgOfferTypeInvalid             = "Tipo de oferta inválida."
	MsgOfferPriceInvalid            = "Preço unitário inválido."
	MsgOfferRemainingAmountInvalid  = "Quantidade restante inválida."
	MsgOfferInitialAmountInvalid    = "Quantidade inicial inválida."
	MsgOfferRemainingExceedsInitial = "Quantidade restante maior que a quantidade inicial."
	MsgOfferUserMissing             = "O usuário não pode ser nulo."
	MsgOfferSpeciesMissing          = "A espécie não pode ser nula."
	MsgOfferFlowerShopNotAllowed    = "Apenas pessoas jurídicas podem vincular uma floricultura."
	MsgOfferAddressMissing          = "O endereço não pode ser nulo."
	MsgOfferStatusMissing           = "Status da oferta não pode ser nulo."
	MsgOfferStatusUnknown           = "Status de oferta inexistente."
)

// Offer quantity and text bounds.
const (
	MaxOfferAmount            = 9999
	MaxOfferDescriptionLength = 2500
)

var (
	// ErrUnknownOfferStatus is returned when a status outside the known set is requested.
	ErrUnknownOfferStatus = errors.New("unknown offer status")
	// ErrOfferNotActive is returned when reserving from an offer that is not active.
	ErrOfferNotActive = errors.New("offer is not active")
	// ErrInvalidReserveAmount is returned when a reservation is not within the remaining amount.
	ErrInvalidReserveAmount = errors.New("reserve amount must be between 1 and the remaining amount")
)

// Offer is a posted sale or donation of a plant or seed quantity.
// Type and InitialAmount are derived once by NewOffer and never re-derived.
type Offer struct {
	ID              int64               `json:"id"`
	UnitPrice       decimal.NullDecimal `json:"unit_price"`
	RemainingAmount int                 `json:"remaining_amount"`
	InitialAmount   int                 `json:"initial_amount"`
	Status          OfferStatus         `json:"status"`
	Type            OfferType           `json:"type"`
	ProductAge      int                 `json:"product_age"`
	Description     string              `json:"description"`
	User            *User               `json:"user"`
	Species         *Species            `json:"species"`
	FlowerShop      *FlowerShop         `json:"flower_shop,omitempty"`
	Address         *Address            `json:"address"`
	Comments        []*OfferComment     `json:"comments,omitempty"`
	Requests        []*Request          `json:"-"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// NewOfferParams holds the inputs of NewOffer. An invalid UnitPrice means the
// price was not supplied.
type NewOfferParams struct {
	UnitPrice       decimal.NullDecimal
	RemainingAmount int
	User            *User
	Species         *Species
	Description     string
	FlowerShop      *FlowerShop
	Address         *Address
	ProductAge      int
}

// NewOffer builds an active offer, inferring its commercial type from the price.
// A missing or zero price makes a donation priced at exactly zero; any other
// price makes a sale and is kept as given, negative values included.
// The flower shop is retained only for legal-person users.
func NewOffer(params NewOfferParams) *Offer {
	offer := &Offer{
		RemainingAmount: params.RemainingAmount,
		InitialAmount:   params.RemainingAmount,
		Status:          OfferStatusActive,
		ProductAge:      params.ProductAge,
		Description:     params.Description,
		User:            params.User,
		Species:         params.Species,
		Address:         params.Address,
	}

	if !params.UnitPrice.Valid || params.UnitPrice.Decimal.IsZero() {
		offer.Type = OfferTypeDonation
		offer.UnitPrice = decimal.NewNullDecimal(decimal.Zero)
	} else {
		offer.Type = OfferTypeSale
		offer.UnitPrice = params.UnitPrice
	}

	if params.User != nil && params.User.IsLegalPerson {
		offer.FlowerShop = params.FlowerShop
	}

	return offer
}

// Validate evaluates every offer rule and cascades into the user, species,
// flower shop and address. Root messages come first.
func (o *Offer) Validate() []string {
	var errs []string

	if !lengthBetween(o.Description, 1, MaxOfferDescriptionLength) {
		errs = append(errs, MsgOfferDescriptionInvalid)
	}
	if o.ProductAge < 0 {
		errs = append(errs, MsgOfferProductAgeInvalid)
	}
	errs = append(errs, o.priceErrors()...)

	remainingOK := o.RemainingAmount >= 0 && o.RemainingAmount <= MaxOfferAmount
	initialOK := o.InitialAmount >= 1 && o.InitialAmount <= MaxOfferAmount
	if !remainingOK {
		errs = append(errs, MsgOfferRemainingAmountInvalid)
	}
	if !initialOK {
		errs = append(errs, MsgOfferInitialAmountInvalid)
	}
	if remainingOK && initialOK && o.RemainingAmount > o.InitialAmount {
		errs = append(errs, MsgOfferRemainingExceedsInitial)
	}

	errs = cascadeRequired(errs, o.User != nil, o.User, MsgOfferUserMissing)
	errs = cascadeRequired(errs, o.Species != nil, o.Species, MsgOfferSpeciesMissing)
	errs = cascadeOptional(errs, o.FlowerShop != nil, o.FlowerShop)
	if o.FlowerShop != nil && o.User != nil && !o.User.IsLegalPerson {
		errs = append(errs, MsgOfferFlowerShopNotAllowed)
	}
	errs = cascadeRequired(errs, o.Address != nil, o.Address, MsgOfferAddressMissing)

	switch {
	case o.Status == 0:
		errs = append(errs, MsgOfferStatusMissing)
	case !o.Status.IsValid():
		errs = append(errs, MsgOfferStatusUnknown)
	}

	return errs
}

// priceErrors cross-checks the commercial type against the unit price.
func (o *Offer) priceErrors() []string {
	if o.Type == 0 || !o.UnitPrice.Valid {
		var errs []string
		if o.Type == 0 {
			errs = append(errs, MsgOfferTypeInvalid)
		}
		if !o.UnitPrice.Valid {
			errs = append(errs, MsgOfferPriceInvalid)
		}

		return errs
	}

	price := o.UnitPrice.Decimal
	switch o.Type {
	case OfferTypeSale:
		if price.LessThanOrEqual(decimal.Zero) {
			return []string{MsgOfferSalePriceInvalid}
		}
	case OfferTypeDonation:
		if !price.IsZero() {
			return []string{MsgOfferDonationPriceInvalid}
		}
	default:
		return []string{MsgOfferTypeInvalid}
	}

	return nil
}

// ApplyUpdate copies the mutable fields of source onto the offer.
// Only the description is mutable; price, quantities, type and status are ignored.
func (o *Offer) ApplyUpdate(source *Offer) {
	if source == nil {
		return
	}
	o.Description = source.Description
}

// ChangeStatus moves the offer to status, which must belong to the known set.
func (o *Offer) ChangeStatus(status OfferStatus) error {
	if !status.IsValid() {
		return ErrUnknownOfferStatus
	}
	o.Status = status

	return nil
}

// Reserve takes amount units out of the remaining amount. The offer becomes
// fulfilled when nothing remains.
func (o *Offer) Reserve(amount int) error {
	if o.Status != OfferStatusActive {
		return ErrOfferNotActive
	}
	if amount < 1 || amount > o.RemainingAmount {
		return ErrInvalidReserveAmount
	}

	o.RemainingAmount -= amount
	if o.RemainingAmount == 0 {
		o.Status = OfferStatusFulfilled
	}

	return nil
}

// OwnedBy reports whether the offer belongs to the user with the given id.
func (o *Offer) OwnedBy(userID int64) bool {
	return o.User != nil && o.User.ID == userID
}

// PhotoType implements Photogenic.
func (o *Offer) PhotoType() PhotoType {
	return PhotoTypeOffer
}
