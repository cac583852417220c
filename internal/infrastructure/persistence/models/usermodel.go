package models

import (
	"time"

	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// UserModel represents the database persistence model for console users.
type UserModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: usr_xxx"`
	Email          string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash   string `gorm:"not null;size:255"`
	Name           string `gorm:"not null;size:100"`
	Role           string `gorm:"not null;size:20;default:tenant;index"`
	OrganizationID *uint  `gorm:"index"`
	ActivityID     *uint  `gorm:"index"`
	Disabled       bool   `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
