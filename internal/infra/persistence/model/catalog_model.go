package model

import (
	"time"
)

// SpeciesModel mirrors the 'species' table.
type SpeciesModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	CommonName     string `gorm:"type:varchar(100);not null"`
	ScientificName string `gorm:"type:varchar(100);not null"`
	Description    string `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpeciesModel) TableName() string {
	return "species"
}

// FlowerShopModel mirrors the 'flower_shops' table.
type FlowerShopModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(100);not null"`
	CNPJ        string `gorm:"column:cnpj;type:varchar(14);not null"`
	Description string `gorm:"type:text"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	AddressID   int64  `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Address *AddressModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (FlowerShopModel) TableName() string {
	return "flower_shops"
}
