package models

import (
	"time"

	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
// This is the anti-corruption layer between domain and database
type SubscriptionModel struct {
	ID               uint       `gorm:"primarykey"`
	SID              string     `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: sub_xxx"`
	ActivityID       uint       `gorm:"not null;uniqueIndex:idx_activity_service,priority:1"`
	ServiceCode      string     `gorm:"not null;size:50;uniqueIndex:idx_activity_service,priority:2"`
	Status           string     `gorm:"not null;size:20;index:idx_status"`
	BillingCycle     *string    `gorm:"size:20"`
	TrialEndsAt      *time.Time `gorm:"index:idx_trial_ends_at"`
	CurrentPeriodEnd *time.Time `gorm:"index:idx_current_period_end"`
	ManualRenewDate  *time.Time `gorm:"index:idx_manual_renew_date"`
	PaymentMethod    string     `gorm:"not null;size:20;default:manual"`
	IsFreePromo      bool       `gorm:"not null;default:false"`
	PaymentReference string     `gorm:"size:255"`
	ManualRenewNotes string     `gorm:"size:500"`
	Version          int        `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// BeforeCreate hook for GORM
func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
