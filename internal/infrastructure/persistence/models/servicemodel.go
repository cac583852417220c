package models

import (
	"time"

	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// ServiceModel represents the database persistence model for catalog services.
type ServiceModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: svc_xxx"`
	Code              string `gorm:"uniqueIndex;not null;size:50"`
	Name              string `gorm:"not null;size:100"`
	Description       string `gorm:"size:500"`
	PriceMonthlyCents int64  `gorm:"not null;default:0"`
	PriceYearlyCents  int64  `gorm:"not null;default:0"`
	HasFreeTier       bool   `gorm:"not null;default:false"`
	TrialDays         int    `gorm:"not null;default:14"`
	AddonPriceCents   int64  `gorm:"not null;default:0"`
	Archived          bool   `gorm:"not null;default:false;index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return constants.TableServices
}
