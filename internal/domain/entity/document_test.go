package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		cpf   string
		valid bool
	}{
		{validCPF, true},
		{"52998224724", false},
		{"11111111111", false},
		{"000000000", false},
		{"529.982.247-25", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidCPF(tt.cpf), tt.cpf)
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		cnpj  string
		valid bool
	}{
		{validCNPJ, true},
		{"11222333000182", false},
		{"00000000000000", false},
		{"1122233300018", false},
		{"11.222.333/0001-81", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidCNPJ(tt.cnpj), tt.cnpj)
	}
}

func TestAddress_Validate(t *testing.T) {
	addr := newTestAddress()
	assert.Empty(t, addr.Validate())

	addr = &Address{Complement: longText(101), State: "sc", PostalCode: "8901-000"}
	assert.Equal(t, []string{
		MsgAddressStreetInvalid,
		MsgAddressNumberInvalid,
		MsgAddressComplementInvalid,
		MsgAddressNeighborhoodInvalid,
		MsgAddressCityInvalid,
		MsgAddressStateInvalid,
		MsgAddressPostalCodeInvalid,
	}, addr.Validate())
}

func TestFlowerShop_Validate(t *testing.T) {
	shop := newTestFlowerShop()
	assert.Empty(t, shop.Validate())

	shop.Description = longText(2501)
	shop.Address = nil
	assert.Equal(t, []string{MsgFlowerShopDescriptionInvalid, MsgFlowerShopAddressMissing}, shop.Validate())
}

func TestSpecies_Validate(t *testing.T) {
	assert.Empty(t, newTestSpecies().Validate())

	species := &Species{CommonName: "Ipê", ScientificName: longText(101), Description: longText(5001)}
	assert.Equal(t, []string{MsgSpeciesScientificNameInvalid, MsgSpeciesDescriptionInvalid}, species.Validate())
}
