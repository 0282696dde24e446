package postgres

import (
	"testing"
	"time"

	"seedshare/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))

	return db
}

func testAddress() *entity.Address {
	return &entity.Address{
		Street:       "Rua das Flores",
		Number:       "120",
		Neighborhood: "Centro",
		City:         "Blumenau",
		State:        "SC",
		PostalCode:   "89010000",
	}
}

func testIndividual(email, cpf string) *entity.User {
	return &entity.User{
		Name:         "Maria Silva",
		Email:        email,
		CPF:          &cpf,
		PhotoID:      entity.DefaultPhotoID,
		PasswordHash: "hash",
		IsApproved:   true,
		CreationDate: time.Now().Add(-time.Hour).UTC().Truncate(time.Second),
	}
}

func testLegalPerson(email string) *entity.User {
	return &entity.User{
		Name:          "Jardim Ltda",
		Email:         email,
		PhotoID:       entity.DefaultPhotoID,
		PasswordHash:  "hash",
		IsLegalPerson: true,
		CreationDate:  time.Now().Add(-time.Hour).UTC().Truncate(time.Second),
	}
}
