package dto

import "time"

// ServiceStatusDTO is the time-corrected view of one (activity, service)
// pair, the payload behind status badges and the access gate.
type ServiceStatusDTO struct {
	ActivityID      uint   `json:"activity_id"`
	ServiceCode     string `json:"service_code"`
	EffectiveStatus string `json:"effective_status"`
	IsActive        bool   `json:"is_active"`
	DaysRemaining   *int   `json:"days_remaining,omitempty"`
	ExpiringSoon    bool   `json:"expiring_soon"`
}

// SubscriptionDTO exposes the stored subscription record alongside its
// resolved status.
type SubscriptionDTO struct {
	SID              string     `json:"sid"`
	ActivityID       uint       `json:"activity_id"`
	ServiceCode      string     `json:"service_code"`
	Status           string     `json:"status"`
	EffectiveStatus  string     `json:"effective_status"`
	IsActive         bool       `json:"is_active"`
	DaysRemaining    *int       `json:"days_remaining,omitempty"`
	BillingCycle     *string    `json:"billing_cycle,omitempty"`
	PaymentMethod    string     `json:"payment_method"`
	IsFreePromo      bool       `json:"is_free_promo"`
	TrialEndsAt      *time.Time `json:"trial_ends_at,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
	ManualRenewDate  *time.Time `json:"manual_renew_date,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	ManualRenewNotes string     `json:"manual_renew_notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
