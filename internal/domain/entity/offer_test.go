package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOfferParams() NewOfferParams {
	return NewOfferParams{
		RemainingAmount: 10,
		User:            newTestIndividual(),
		Species:         newTestSpecies(),
		Description:     "seeds",
		Address:         newTestAddress(),
		ProductAge:      0,
	}
}

func TestNewOffer_TypeInference(t *testing.T) {
	tests := []struct {
		name      string
		price     decimal.NullDecimal
		wantType  OfferType
		wantPrice decimal.Decimal
	}{
		{"absent price is a donation", decimal.NullDecimal{}, OfferTypeDonation, decimal.Zero},
		{"zero price is a donation", decimal.NewNullDecimal(decimal.Zero), OfferTypeDonation, decimal.Zero},
		{"positive price is a sale", decimal.NewNullDecimal(decimal.RequireFromString("12.50")), OfferTypeSale, decimal.RequireFromString("12.50")},
		{"negative price is kept as a sale", decimal.NewNullDecimal(decimal.NewFromInt(-1)), OfferTypeSale, decimal.NewFromInt(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := newTestOfferParams()
			params.UnitPrice = tt.price

			offer := NewOffer(params)

			assert.Equal(t, tt.wantType, offer.Type)
			require.True(t, offer.UnitPrice.Valid)
			assert.True(t, tt.wantPrice.Equal(offer.UnitPrice.Decimal), "price %s", offer.UnitPrice.Decimal)
			assert.Equal(t, offer.RemainingAmount, offer.InitialAmount)
			assert.Equal(t, OfferStatusActive, offer.Status)
		})
	}
}

func TestNewOffer_DonationEndToEnd(t *testing.T) {
	offer := NewOffer(newTestOfferParams())

	assert.Equal(t, OfferTypeDonation, offer.Type)
	assert.True(t, offer.UnitPrice.Decimal.IsZero())
	assert.Equal(t, 10, offer.InitialAmount)
	assert.Equal(t, 10, offer.RemainingAmount)
	assert.Empty(t, offer.Validate())
}

func TestNewOffer_NegativePriceReportsSaleMessage(t *testing.T) {
	params := newTestOfferParams()
	params.UnitPrice = decimal.NewNullDecimal(decimal.NewFromInt(-1))

	offer := NewOffer(params)

	assert.True(t, decimal.NewFromInt(-1).Equal(offer.UnitPrice.Decimal))
	assert.Equal(t, []string{MsgOfferSalePriceInvalid}, offer.Validate())
}

func TestNewOffer_FlowerShopRetainedOnlyForLegalPersons(t *testing.T) {
	params := newTestOfferParams()
	params.FlowerShop = newTestFlowerShop()

	individualOffer := NewOffer(params)
	assert.Nil(t, individualOffer.FlowerShop)

	params.User = newTestLegalPerson()
	businessOffer := NewOffer(params)
	assert.NotNil(t, businessOffer.FlowerShop)
	assert.Empty(t, businessOffer.Validate())
}

func TestNewOffer_NilUserDiscardsFlowerShop(t *testing.T) {
	params := newTestOfferParams()
	params.User = nil
	params.FlowerShop = newTestFlowerShop()

	offer := NewOffer(params)

	assert.Nil(t, offer.FlowerShop)
	assert.Equal(t, []string{MsgOfferUserMissing}, offer.Validate())
}

func TestOffer_Validate_PriceCrossCheck(t *testing.T) {
	offer := NewOffer(newTestOfferParams())

	offer.UnitPrice = decimal.NewNullDecimal(decimal.NewFromInt(3))
	assert.Equal(t, []string{MsgOfferDonationPriceInvalid}, offer.Validate())

	offer.Type = OfferTypeSale
	offer.UnitPrice = decimal.NewNullDecimal(decimal.Zero)
	assert.Equal(t, []string{MsgOfferSalePriceInvalid}, offer.Validate())

	offer.Type = 0
	offer.UnitPrice = decimal.NullDecimal{}
	assert.Equal(t, []string{MsgOfferTypeInvalid, MsgOfferPriceInvalid}, offer.Validate())

	offer.Type = OfferTypeDonation
	assert.Equal(t, []string{MsgOfferPriceInvalid}, offer.Validate())

	offer.Type = OfferType(9)
	offer.UnitPrice = decimal.NewNullDecimal(decimal.Zero)
	assert.Equal(t, []string{MsgOfferTypeInvalid}, offer.Validate())
}

func TestOffer_Validate_CollectsEveryFieldFailure(t *testing.T) {
	offer := &Offer{
		Description:     "",
		ProductAge:      -1,
		Type:            OfferTypeSale,
		UnitPrice:       decimal.NewNullDecimal(decimal.Zero),
		RemainingAmount: 10000,
		InitialAmount:   0,
		Status:          OfferStatus(42),
	}

	assert.Equal(t, []string{
		MsgOfferDescriptionInvalid,
		MsgOfferProductAgeInvalid,
		MsgOfferSalePriceInvalid,
		MsgOfferRemainingAmountInvalid,
		MsgOfferInitialAmountInvalid,
		MsgOfferUserMissing,
		MsgOfferSpeciesMissing,
		MsgOfferAddressMissing,
		MsgOfferStatusUnknown,
	}, offer.Validate())
}

func TestOffer_Validate_Bounds(t *testing.T) {
	offer := NewOffer(newTestOfferParams())

	offer.Description = longText(MaxOfferDescriptionLength)
	assert.Empty(t, offer.Validate())

	offer.Description = longText(MaxOfferDescriptionLength + 1)
	assert.Equal(t, []string{MsgOfferDescriptionInvalid}, offer.Validate())

	offer.Description = "seeds"
	offer.RemainingAmount = 0
	assert.Empty(t, offer.Validate())

	offer.RemainingAmount = 11
	assert.Equal(t, []string{MsgOfferRemainingExceedsInitial}, offer.Validate())

	offer.RemainingAmount = 5
	offer.Status = 0
	assert.Equal(t, []string{MsgOfferStatusMissing}, offer.Validate())
}

func TestOffer_Validate_CascadeOrder(t *testing.T) {
	params := newTestOfferParams()
	params.User = newTestLegalPerson()
	params.User.Email = "not-an-email"
	params.Species = &Species{}
	params.FlowerShop = &FlowerShop{Name: "Loja", CNPJ: "123", Address: newTestAddress()}
	params.Address = &Address{Street: "Rua", Number: "1", Neighborhood: "B", City: "C", State: "XX", PostalCode: "89010000"}
	params.Description = ""

	offer := NewOffer(params)

	assert.Equal(t, []string{
		MsgOfferDescriptionInvalid,
		MsgUserEmailInvalid,
		MsgSpeciesCommonNameInvalid,
		MsgSpeciesScientificNameInvalid,
		MsgFlowerShopCNPJInvalid,
		MsgAddressStateInvalid,
	}, offer.Validate())
}

func TestOffer_Validate_FlowerShopOnIndividualRejected(t *testing.T) {
	offer := NewOffer(newTestOfferParams())
	offer.FlowerShop = newTestFlowerShop()

	assert.Equal(t, []string{MsgOfferFlowerShopNotAllowed}, offer.Validate())
}

func TestOffer_Validate_Idempotent(t *testing.T) {
	offer := &Offer{ProductAge: -3}

	first := offer.Validate()
	second := offer.Validate()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestOffer_ApplyUpdate_OnlyDescription(t *testing.T) {
	offer := NewOffer(newTestOfferParams())
	source := &Offer{
		Description:     "new description",
		UnitPrice:       decimal.NewNullDecimal(decimal.NewFromInt(50)),
		Type:            OfferTypeSale,
		RemainingAmount: 1,
		InitialAmount:   1,
		Status:          OfferStatusCancelled,
	}

	offer.ApplyUpdate(source)

	assert.Equal(t, "new description", offer.Description)
	assert.Equal(t, OfferTypeDonation, offer.Type)
	assert.True(t, offer.UnitPrice.Decimal.IsZero())
	assert.Equal(t, 10, offer.RemainingAmount)
	assert.Equal(t, 10, offer.InitialAmount)
	assert.Equal(t, OfferStatusActive, offer.Status)

	offer.ApplyUpdate(nil)
	assert.Equal(t, "new description", offer.Description)
}

func TestOffer_ChangeStatus(t *testing.T) {
	offer := NewOffer(newTestOfferParams())

	require.NoError(t, offer.ChangeStatus(OfferStatusCancelled))
	assert.Equal(t, OfferStatusCancelled, offer.Status)

	assert.ErrorIs(t, offer.ChangeStatus(OfferStatus(7)), ErrUnknownOfferStatus)
	assert.Equal(t, OfferStatusCancelled, offer.Status)
}

func TestOffer_Reserve(t *testing.T) {
	offer := NewOffer(newTestOfferParams())

	assert.ErrorIs(t, offer.Reserve(0), ErrInvalidReserveAmount)
	assert.ErrorIs(t, offer.Reserve(11), ErrInvalidReserveAmount)

	require.NoError(t, offer.Reserve(4))
	assert.Equal(t, 6, offer.RemainingAmount)
	assert.Equal(t, 10, offer.InitialAmount)
	assert.Equal(t, OfferStatusActive, offer.Status)

	require.NoError(t, offer.Reserve(6))
	assert.Equal(t, 0, offer.RemainingAmount)
	assert.Equal(t, OfferStatusFulfilled, offer.Status)
	assert.Empty(t, offer.Validate())

	assert.ErrorIs(t, offer.Reserve(1), ErrOfferNotActive)
}

func TestOffer_PhotoCapability(t *testing.T) {
	var items []Photogenic = []Photogenic{&User{}, &Offer{}, &Species{}, &FlowerShop{}}
	kinds := make([]PhotoType, 0, len(items))
	for _, item := range items {
		kinds = append(kinds, item.PhotoType())
	}

	assert.Equal(t, []PhotoType{PhotoTypeUser, PhotoTypeOffer, PhotoTypeSpecies, PhotoTypeFlowerShop}, kinds)
}
