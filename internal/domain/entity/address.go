package entity

import (
	"slices"
	"time"
)

// Validation messages reported by Address.Validate.
const (
	MsgAddressStreetInvalid       = "Logradouro inválido."
	MsgAddressNumberInvalid       = "Número inválido."
	MsgAddressComplementInvalid   = "Complemento inválido."
	MsgAddressNeighborhoodInvalid = "Bairro inválido."
	MsgAddressCityInvalid         = "Cidade inválida."
	MsgAddressStateInvalid        = "Estado inválido."
	MsgAddressPostalCodeInvalid   = "CEP inválido."
)

const postalCodeLength = 8

// federativeUnits lists the two-letter codes of the Brazilian states.
var federativeUnits = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA", "MT", "MS", "MG", "PA",
	"PB", "PR", "PE", "PI", "RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// Address is the core entity for a physical location.
// It is owned by a User and referenced (shared) by offers and flower shops.
type Address struct {
	ID           int64     `json:"id"`           // Surrogate identity assigned on first persist.
	UserID       int64     `json:"user_id"`      // The owning user, zero while the owner is not persisted yet.
	Street       string    `json:"street"`       // Street name.
	Number       string    `json:"number"`       // Building number, free-form (e.g. "12A", "s/n").
	Complement   string    `json:"complement"`   // Optional complement such as apartment or block.
	Neighborhood string    `json:"neighborhood"` // Neighborhood (bairro).
	City         string    `json:"city"`         // City name.
	State        string    `json:"state"`        // Two-letter state code.
	PostalCode   string    `json:"postal_code"`  // Eight-digit CEP without punctuation.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate returns the address field failures in declaration order.
func (a *Address) Validate() []string {
	var errs []string

	if !lengthBetween(a.Street, 1, 200) {
		errs = append(errs, MsgAddressStreetInvalid)
	}
	if !lengthBetween(a.Number, 1, 10) {
		errs = append(errs, MsgAddressNumberInvalid)
	}
	if !lengthBetween(a.Complement, 0, 100) {
		errs = append(errs, MsgAddressComplementInvalid)
	}
	if !lengthBetween(a.Neighborhood, 1, 100) {
		errs = append(errs, MsgAddressNeighborhoodInvalid)
	}
	if !lengthBetween(a.City, 1, 100) {
		errs = append(errs, MsgAddressCityInvalid)
	}
	if !slices.Contains(federativeUnits, a.State) {
		errs = append(errs, MsgAddressStateInvalid)
	}
	if _, ok := parseDigits(a.PostalCode, postalCodeLength); !ok {
		errs = append(errs, MsgAddressPostalCodeInvalid)
	}

	return errs
}
