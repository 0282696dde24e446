package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"seedshare/internal/domain/entity"
	"seedshare/internal/domain/repository"
	mockRepo "seedshare/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const testCPF = "52998224725"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newStoredAddress(id, userID int64) *entity.Address {
	return &entity.Address{
		ID:           id,
		UserID:       userID,
		Street:       "Rua das Flores",
		Number:       "120",
		Neighborhood: "Centro",
		City:         "Campinas",
		State:        "SP",
		PostalCode:   "13010000",
	}
}

func newStoredUser(id int64) *entity.User {
	cpf := testCPF

	return &entity.User{
		ID:           id,
		Name:         "Maria Souza",
		Email:        "maria@example.com",
		CPF:          &cpf,
		PhotoID:      entity.DefaultPhotoID,
		PasswordHash: "stored-hash",
		IsApproved:   true,
		CreationDate: time.Now().Add(-time.Hour),
	}
}

func newStoredLegalPerson(id int64) *entity.User {
	user := newStoredUser(id)
	user.CPF = nil
	user.IsLegalPerson = true
	user.Email = "contato@floricultura.com.br"

	return user
}

func newStoredSpecies(id int64) *entity.Species {
	return &entity.Species{
		ID:             id,
		CommonName:     "Ipê-amarelo",
		ScientificName: "Handroanthus albus",
	}
}

// newStoredOffer returns an active donation of amount units owned by owner.
func newStoredOffer(id int64, owner *entity.User, amount int) *entity.Offer {
	offer := entity.NewOffer(entity.NewOfferParams{
		RemainingAmount: amount,
		User:            owner,
		Species:         newStoredSpecies(2),
		Description:     "Mudas de ipê com seis meses",
		Address:         newStoredAddress(3, owner.ID),
		ProductAge:      6,
	})
	offer.ID = id

	return offer
}
