package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// UserID is the registering account; it is unset while the owner row is being created.
type AddressModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserID       *int64 `gorm:"index:idx_addresses_on_user"`
	Street       string `gorm:"type:varchar(200);not null"`
	Number       string `gorm:"type:varchar(10);not null"`
	Complement   string `gorm:"type:varchar(100)"`
	Neighborhood string `gorm:"type:varchar(100);not null"`
	City         string `gorm:"type:varchar(100);not null"`
	State        string `gorm:"type:char(2);not null"`
	PostalCode   string `gorm:"type:char(8);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
