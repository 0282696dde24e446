package entity

import "time"

// Validation messages reported by FlowerShop.Validate.
const (
	MsgFlowerShopNameInvalid        = "Nome da floricultura inválido."
	MsgFlowerShopCNPJInvalid        = "CNPJ inválido."
	MsgFlowerShopDescriptionInvalid = "Descrição da floricultura inválida."
	MsgFlowerShopAddressMissing     = "O endereço da floricultura não pode ser nulo."
)

// FlowerShop is a business affiliated with a legal-person user.
type FlowerShop struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"` // The legal-person user that runs the shop.
	Name        string    `json:"name"`
	CNPJ        string    `json:"cnpj"` // Fourteen-digit company id without punctuation.
	Description string    `json:"description"`
	PhoneNumber string    `json:"phone_number"`
	Address     *Address  `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate returns the flower shop's own failures followed by its address'.
func (f *FlowerShop) Validate() []string {
	var errs []string

	if !lengthBetween(f.Name, 1, 100) {
		errs = append(errs, MsgFlowerShopNameInvalid)
	}
	if !IsValidCNPJ(f.CNPJ) {
		errs = append(errs, MsgFlowerShopCNPJInvalid)
	}
	if !lengthBetween(f.Description, 0, 2500) {
		errs = append(errs, MsgFlowerShopDescriptionInvalid)
	}

	return cascadeRequired(errs, f.Address != nil, f.Address, MsgFlowerShopAddressMissing)
}

// PhotoType implements Photogenic.
func (f *FlowerShop) PhotoType() PhotoType {
	return PhotoTypeFlowerShop
}
