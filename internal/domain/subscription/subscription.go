package subscription

import (
	"fmt"
	"time"

	vo "centro/internal/domain/subscription/valueobjects"
	"centro/internal/shared/id"
)

// Subscription is the aggregate root recording an activity's relationship to
// a service. At most one subscription exists per (activity, service) pair;
// it is never hard-deleted, cancellation retains the row for history.
type Subscription struct {
	id               uint
	sid              string
	activityID       uint
	serviceCode      string
	status           vo.SubscriptionStatus
	billingCycle     *vo.BillingCycle
	trialEndsAt      *time.Time
	currentPeriodEnd *time.Time
	manualRenewDate  *time.Time
	paymentMethod    vo.PaymentMethod
	isFreePromo      bool
	paymentReference string
	manualRenewNotes string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewTrialSubscription creates a subscription entering its trial window.
// This is the implicit creation path when a tenant first activates a service.
func NewTrialSubscription(activityID uint, serviceCode string, trialDays int, now time.Time) (*Subscription, error) {
	if activityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if serviceCode == "" {
		return nil, fmt.Errorf("service code is required")
	}
	if trialDays < MinTrialDays || trialDays > MaxTrialDays {
		return nil, ErrInvalidTrialDuration
	}

	trialEnd := now.AddDate(0, 0, trialDays)
	return &Subscription{
		sid:           id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		activityID:    activityID,
		serviceCode:   serviceCode,
		status:        vo.StatusTrial,
		trialEndsAt:   &trialEnd,
		paymentMethod: vo.PaymentMethodManual,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewFreeSubscription creates a subscription on the service's free tier.
func NewFreeSubscription(activityID uint, serviceCode string, now time.Time) (*Subscription, error) {
	if activityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if serviceCode == "" {
		return nil, fmt.Errorf("service code is required")
	}

	return &Subscription{
		sid:           id.MustGenerateWithPrefix(id.PrefixSubscription, id.DefaultLength),
		activityID:    activityID,
		serviceCode:   serviceCode,
		status:        vo.StatusFree,
		paymentMethod: vo.PaymentMethodManual,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructParams carries all persisted fields back into the aggregate.
type ReconstructParams struct {
	ID               uint
	SID              string
	ActivityID       uint
	ServiceCode      string
	Status           vo.SubscriptionStatus
	BillingCycle     *vo.BillingCycle
	TrialEndsAt      *time.Time
	CurrentPeriodEnd *time.Time
	ManualRenewDate  *time.Time
	PaymentMethod    vo.PaymentMethod
	IsFreePromo      bool
	PaymentReference string
	ManualRenewNotes string
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.ActivityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if p.ServiceCode == "" {
		return nil, fmt.Errorf("service code is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	if !p.PaymentMethod.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", p.PaymentMethod)
	}

	return &Subscription{
		id:               p.ID,
		sid:              p.SID,
		activityID:       p.ActivityID,
		serviceCode:      p.ServiceCode,
		status:           p.Status,
		billingCycle:     p.BillingCycle,
		trialEndsAt:      p.TrialEndsAt,
		currentPeriodEnd: p.CurrentPeriodEnd,
		manualRenewDate:  p.ManualRenewDate,
		paymentMethod:    p.PaymentMethod,
		isFreePromo:      p.IsFreePromo,
		paymentReference: p.PaymentReference,
		manualRenewNotes: p.ManualRenewNotes,
		version:          p.Version,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) SID() string                   { return s.sid }
func (s *Subscription) ActivityID() uint              { return s.activityID }
func (s *Subscription) ServiceCode() string           { return s.serviceCode }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) BillingCycle() *vo.BillingCycle {
	return s.billingCycle
}
func (s *Subscription) TrialEndsAt() *time.Time      { return s.trialEndsAt }
func (s *Subscription) CurrentPeriodEnd() *time.Time { return s.currentPeriodEnd }
func (s *Subscription) ManualRenewDate() *time.Time  { return s.manualRenewDate }
func (s *Subscription) PaymentMethod() vo.PaymentMethod {
	return s.paymentMethod
}
func (s *Subscription) IsFreePromo() bool        { return s.isFreePromo }
func (s *Subscription) PaymentReference() string { return s.paymentReference }
func (s *Subscription) ManualRenewNotes() string { return s.manualRenewNotes }
func (s *Subscription) Version() int             { return s.version }
func (s *Subscription) CreatedAt() time.Time     { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time     { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(subID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if subID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = subID
	return nil
}

// Cancel moves the subscription to cancelled. Reachable from any state;
// idempotent when already cancelled.
func (s *Subscription) Cancel(now time.Time) {
	if s.status == vo.StatusCancelled {
		return
	}
	s.status = vo.StatusCancelled
	s.touch(now)
}

// MarkAsExpired persists a time-driven expiry detected by the sweep. Only
// trial and billed states expire; the resolver remains the source of truth
// for display in between sweeps.
func (s *Subscription) MarkAsExpired(now time.Time) error {
	switch s.status {
	case vo.StatusExpired:
		return nil
	case vo.StatusTrial, vo.StatusActive, vo.StatusPastDue:
		s.status = vo.StatusExpired
		s.touch(now)
		return nil
	default:
		return fmt.Errorf("cannot mark subscription as expired with status %s", s.status)
	}
}

func (s *Subscription) touch(now time.Time) {
	s.updatedAt = now
	s.version++
}

// Validate performs domain-level validation.
func (s *Subscription) Validate() error {
	if s.activityID == 0 {
		return fmt.Errorf("activity ID is required")
	}
	if s.serviceCode == "" {
		return fmt.Errorf("service code is required")
	}
	if !s.status.IsValid() {
		return fmt.Errorf("invalid status: %s", s.status)
	}
	if s.status == vo.StatusTrial && s.trialEndsAt == nil {
		return fmt.Errorf("trial subscription requires trial end date")
	}
	if s.billingCycle != nil && !s.billingCycle.IsValid() {
		return fmt.Errorf("invalid billing cycle: %s", *s.billingCycle)
	}
	return nil
}
