package models

import (
	"time"

	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// OrganizationModel represents the database persistence model for organizations.
type OrganizationModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: org_xxx"`
	Name         string `gorm:"not null;size:200"`
	AccountType  string `gorm:"not null;size:20;default:single;index"`
	BillingEmail string `gorm:"size:255"`
	Suspended    bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (OrganizationModel) TableName() string {
	return constants.TableOrganizations
}
