// Package model holds the GORM persistence structs for the marketplace tables.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. Email and CPF carry unique indexes;
// legal persons store a NULL cpf, which the index does not compare.
type UserModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_email"`
	CPF           *string   `gorm:"column:cpf;type:varchar(11);uniqueIndex:idx_users_cpf"`
	PhotoID       string    `gorm:"type:varchar(64);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	PhoneNumber   string    `gorm:"type:varchar(20)"`
	IsLegalPerson bool      `gorm:"not null;default:false"`
	IsApproved    bool      `gorm:"not null;default:false"`
	CreationDate  time.Time `gorm:"not null"`
	AddressID     *int64    `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Address *AddressModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
