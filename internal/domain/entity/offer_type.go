package entity

// OfferType is the commercial classification of an offer.
// The zero value means the type is absent.
type OfferType int

const (
	// OfferTypeSale is a priced offer.
	OfferTypeSale OfferType = 1
	// OfferTypeDonation is a zero-priced offer.
	OfferTypeDonation OfferType = 2
)

// String returns the string representation of the OfferType.
func (t OfferType) String() string {
	switch t {
	case OfferTypeSale:
		return "sale"
	case OfferTypeDonation:
		return "donation"
	default:
		return "unknown"
	}
}

// IsValid checks if the OfferType is a valid value.
func (t OfferType) IsValid() bool {
	switch t {
	case OfferTypeSale, OfferTypeDonation:
		return true
	default:
		return false
	}
}
