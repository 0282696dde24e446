package postgres

import (
	"context"
	"testing"

	"seedshare/internal/errors"
	"seedshare/internal/infra/persistence/model"
	"seedshare/internal/infra/persistence/postgres/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_TablesMatchModels(t *testing.T) {
	q := query.Use(newTestDB(t))

	assert.Equal(t, model.AddressModel{}.TableName(), q.AddressModel.TableName())
	assert.Equal(t, model.UserModel{}.TableName(), q.UserModel.TableName())
	assert.Equal(t, model.SpeciesModel{}.TableName(), q.SpeciesModel.TableName())
	assert.Equal(t, model.FlowerShopModel{}.TableName(), q.FlowerShopModel.TableName())
	assert.Equal(t, model.OfferModel{}.TableName(), q.OfferModel.TableName())
	assert.Equal(t, model.RequestModel{}.TableName(), q.RequestModel.TableName())
}

func TestQuery_TransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	q := query.Use(newTestDB(t))
	boom := errors.New("boom")

	err := q.Transaction(func(tx *query.Query) error {
		species := &model.SpeciesModel{CommonName: "Pitanga", ScientificName: "Eugenia uniflora"}
		require.NoError(t, tx.SpeciesModel.WithContext(ctx).Create(species))
		require.NotZero(t, species.ID)

		return boom
	})
	assert.ErrorIs(t, err, boom)

	count, err := q.SpeciesModel.WithContext(ctx).Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
