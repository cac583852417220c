package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// PlanModel represents the database persistence model for service plans.
type PlanModel struct {
	ID                uint   `gorm:"primarykey"`
	SID               string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: plan_xxx"`
	ServiceID         uint   `gorm:"not null;uniqueIndex:idx_service_plan_code,priority:1"`
	Code              string `gorm:"not null;size:50;uniqueIndex:idx_service_plan_code,priority:2"`
	Name              string `gorm:"not null;size:100"`
	PriceMonthlyCents int64  `gorm:"not null;default:0"`
	PriceYearlyCents  int64  `gorm:"not null;default:0"`
	Features          datatypes.JSON
	IsDefault         bool `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
