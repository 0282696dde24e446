package entity

// PhotoType identifies which kind of entity a stored photo belongs to.
type PhotoType int

const (
	PhotoTypeUser PhotoType = iota + 1
	PhotoTypeOffer
	PhotoTypeSpecies
	PhotoTypeFlowerShop
)

// String returns the string representation of the PhotoType.
func (p PhotoType) String() string {
	switch p {
	case PhotoTypeUser:
		return "user"
	case PhotoTypeOffer:
		return "offer"
	case PhotoTypeSpecies:
		return "species"
	case PhotoTypeFlowerShop:
		return "flower_shop"
	default:
		return "unknown"
	}
}

// Photogenic is the capability shared by entities that can carry a photo.
type Photogenic interface {
	Validatable
	PhotoType() PhotoType
}

var (
	_ Photogenic = (*User)(nil)
	_ Photogenic = (*Offer)(nil)
	_ Photogenic = (*Species)(nil)
	_ Photogenic = (*FlowerShop)(nil)
)
