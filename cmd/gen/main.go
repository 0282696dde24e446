package main

import (
	"seedshare/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Regenerates internal/infra/persistence/postgres/query from the persistence
// models. Run from the repository root after changing a model.
func main() {
	models := []any{
		model.AddressModel{},
		model.UserModel{},
		model.SpeciesModel{},
		model.FlowerShopModel{},
		model.OfferModel{},
		model.RequestModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
