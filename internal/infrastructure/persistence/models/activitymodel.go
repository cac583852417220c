package models

import (
	"time"

	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// ActivityModel represents the database persistence model for activities.
type ActivityModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: act_xxx"`
	OrganizationID *uint  `gorm:"index:idx_activity_organization"`
	Name           string `gorm:"not null;size:200"`
	VATNumber      string `gorm:"size:30;column:vat_number"`
	City           string `gorm:"size:100"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ActivityModel) TableName() string {
	return constants.TableActivities
}
