package entity

// OfferStatus is the lifecycle state of an offer.
// The zero value means the status is absent.
type OfferStatus int

const (
	// OfferStatusActive is the state every offer starts in.
	OfferStatusActive OfferStatus = 1
	// OfferStatusFulfilled indicates the whole amount has been handed out.
	OfferStatusFulfilled OfferStatus = 2
	// OfferStatusCancelled indicates the owner withdrew the offer.
	OfferStatusCancelled OfferStatus = 3
)

// String returns the string representation of the OfferStatus.
func (s OfferStatus) String() string {
	switch s {
	case OfferStatusActive:
		return "active"
	case OfferStatusFulfilled:
		return "fulfilled"
	case OfferStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsValid checks if the OfferStatus is a member of the known status set.
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusActive, OfferStatusFulfilled, OfferStatusCancelled:
		return true
	default:
		return false
	}
}
