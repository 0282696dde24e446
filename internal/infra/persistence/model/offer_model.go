package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferModel mirrors the 'offers' table. Status and Type store the enum ordinals.
type OfferModel struct {
	ID              int64               `gorm:"primaryKey;autoIncrement"`
	UnitPrice       decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	RemainingAmount int                 `gorm:"not null"`
	InitialAmount   int                 `gorm:"not null"`
	Status          int16               `gorm:"not null;index"`
	Type            int16               `gorm:"not null"`
	ProductAge      int                 `gorm:"not null;default:0"`
	Description     string              `gorm:"type:text;not null"`
	UserID          int64               `gorm:"not null;index"`
	SpeciesID       int64               `gorm:"not null;index"`
	FlowerShopID    *int64
	AddressID       int64 `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User       *UserModel       `gorm:"foreignKey:UserID"`
	Species    *SpeciesModel    `gorm:"foreignKey:SpeciesID"`
	FlowerShop *FlowerShopModel `gorm:"foreignKey:FlowerShopID"`
	Address    *AddressModel    `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// RequestModel mirrors the 'requests' table, one row per reservation.
type RequestModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	UserID       int64     `gorm:"not null;index"`
	OfferID      int64     `gorm:"not null;index"`
	Amount       int       `gorm:"not null"`
	CreationDate time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&AddressModel{},
		&UserModel{},
		&SpeciesModel{},
		&FlowerShopModel{},
		&OfferModel{},
		&RequestModel{},
	}
}
