package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	validCPF  = "52998224725"
	validCNPJ = "11222333000181"
)

type prefixHasher struct{}

func (prefixHasher) Hash(secret string) (string, error) {
	return "hashed:" + secret, nil
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) {
	return "", errors.New("digest unavailable")
}

func newTestAddress() *Address {
	return &Address{
		Street:       "Rua das Flores",
		Number:       "120",
		Neighborhood: "Centro",
		City:         "Blumenau",
		State:        "SC",
		PostalCode:   "89010000",
	}
}

func newTestSpecies() *Species {
	return &Species{
		CommonName:     "Ipê-amarelo",
		ScientificName: "Handroanthus albus",
	}
}

func newTestFlowerShop() *FlowerShop {
	return &FlowerShop{
		Name:    "Floricultura Jardim",
		CNPJ:    validCNPJ,
		Address: newTestAddress(),
	}
}

func newTestIndividual() *User {
	user, err := NewUser(prefixHasher{}, NewUserParams{
		CPF:      validCPF,
		Name:     "Maria Silva",
		Email:    "maria@example.com",
		Password: "s3gredo-forte",
	})
	if err != nil {
		panic(err)
	}
	user.CreationDate = time.Now().Add(-time.Hour)

	return user
}

func newTestLegalPerson() *User {
	user, err := NewUser(prefixHasher{}, NewUserParams{
		Name:          "Jardim Ltda",
		Email:         "contato@jardim.com.br",
		Password:      "s3gredo-forte",
		IsLegalPerson: true,
	})
	if err != nil {
		panic(err)
	}
	user.CreationDate = time.Now().Add(-time.Hour)

	return user
}

func longText(n int) string {
	return strings.Repeat("a", n)
}
