package postgres

import (
	"context"
	"testing"
	"time"

	"seedshare/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	addresses := NewAddressRepository(db)
	users := NewUserRepository(db)

	address := testAddress()
	require.NoError(t, addresses.Create(ctx, address))

	user := testIndividual("maria@example.com", "52998224725")
	user.Address = address
	require.NoError(t, users.Create(ctx, user))
	require.NotZero(t, user.ID)

	byID, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", byID.Email)
	require.NotNil(t, byID.CPF)
	assert.Equal(t, "52998224725", *byID.CPF)
	require.NotNil(t, byID.Address)
	assert.Equal(t, address.ID, byID.Address.ID)
	assert.Equal(t, "SC", byID.Address.State)
	assert.Empty(t, byID.Validate())

	byEmail, err := users.FindByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byCPF, err := users.FindByCPF(ctx, "52998224725")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byCPF.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	_, err := users.FindByID(ctx, 99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.FindByEmail(ctx, "ninguem@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UniqueKeys(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	require.NoError(t, users.Create(ctx, testIndividual("maria@example.com", "52998224725")))

	err := users.Create(ctx, testIndividual("maria@example.com", "11144477735"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	err = users.Create(ctx, testIndividual("joao@example.com", "52998224725"))
	assert.ErrorIs(t, err, repository.ErrDuplicateCPF)

	// Legal persons store no cpf, so several of them never collide on it.
	require.NoError(t, users.Create(ctx, testLegalPerson("loja1@example.com")))
	require.NoError(t, users.Create(ctx, testLegalPerson("loja2@example.com")))
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(newTestDB(t))

	user := testIndividual("maria@example.com", "52998224725")
	require.NoError(t, users.Create(ctx, user))

	user.Name = "Maria Souza"
	user.PasswordHash = "new-hash"
	require.NoError(t, users.Update(ctx, user))

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", stored.Name)
	assert.Equal(t, "new-hash", stored.PasswordHash)

	user.ID = 404
	assert.ErrorIs(t, users.Update(ctx, user), repository.ErrUserNotFound)
}

func TestUserRepository_UpdateWritesSelectedColumnsOnly(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)

	taken := testIndividual("joao@example.com", "11144477735")
	require.NoError(t, users.Create(ctx, taken))

	user := testIndividual("maria@example.com", "52998224725")
	require.NoError(t, users.Create(ctx, user))

	registered := user.CreationDate
	user.CreationDate = registered.Add(48 * time.Hour)
	user.IsApproved = false
	user.PhoneNumber = "47999990000"
	require.NoError(t, users.Update(ctx, user))

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsApproved)
	assert.Equal(t, "47999990000", stored.PhoneNumber)
	assert.True(t, registered.Equal(stored.CreationDate))

	user.Email = "joao@example.com"
	assert.ErrorIs(t, users.Update(ctx, user), repository.ErrDuplicateEmail)
}
