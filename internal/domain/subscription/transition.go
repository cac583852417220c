package subscription

import (
	"time"

	vo "centro/internal/domain/subscription/valueobjects"
)

// Trial duration bounds enforced by the transition engine.
const (
	MinTrialDays = 1
	MaxTrialDays = 90
)

// TransitionRequest is an admin-initiated status change. Optional fields are
// pointers; nil leaves the current value untouched where that is meaningful.
type TransitionRequest struct {
	Target           vo.SubscriptionStatus
	BillingCycle     *vo.BillingCycle
	PaymentMethod    *vo.PaymentMethod
	IsFreePromo      bool
	TrialDays        int
	ManualRenewDate  *time.Time
	CurrentPeriodEnd *time.Time
	PaymentReference *string
	ManualRenewNotes *string
}

// ServicePolicy is the slice of catalog data the transition engine needs.
type ServicePolicy struct {
	HasFreeTier      bool
	DefaultTrialDays int
}

// ApplyTransition validates the requested status change and applies it to the
// subscription. On a validation error the subscription is left unmodified.
//
// Rules:
//   - active (pro) without free promo requires a billing cycle, and bank
//     transfer additionally requires a manual renewal date.
//   - trial requires a duration within [MinTrialDays, MaxTrialDays]; the
//     window starts now. A bank-transfer trial without free promo also
//     requires the manual renewal date.
//   - free requires the service to offer a free tier.
//   - past_due, suspended and cancelled are reachable from any state with no
//     extra fields.
//   - expired and inactive are never explicit targets; expiry is time-driven.
func (s *Subscription) ApplyTransition(req TransitionRequest, policy ServicePolicy, now time.Time) error {
	if !req.Target.IsAdminTransitionTarget() {
		return ErrInvalidTransitionTarget
	}

	paymentMethod := s.paymentMethod
	if req.PaymentMethod != nil {
		paymentMethod = *req.PaymentMethod
	}

	switch req.Target {
	case vo.StatusActive:
		if !req.IsFreePromo {
			if req.BillingCycle == nil && s.billingCycle == nil {
				return ErrMissingBillingCycle
			}
			if paymentMethod == vo.PaymentMethodBonifico && req.ManualRenewDate == nil && s.manualRenewDate == nil {
				return ErrMissingRenewalDate
			}
		}

	case vo.StatusTrial:
		trialDays := req.TrialDays
		if trialDays == 0 {
			trialDays = policy.DefaultTrialDays
		}
		if trialDays < MinTrialDays || trialDays > MaxTrialDays {
			return ErrInvalidTrialDuration
		}
		if paymentMethod == vo.PaymentMethodBonifico && !req.IsFreePromo &&
			req.ManualRenewDate == nil && s.manualRenewDate == nil {
			return ErrMissingRenewalDate
		}

	case vo.StatusFree:
		if !policy.HasFreeTier {
			return ErrFreeTierUnavailable
		}
	}

	// Validation passed; mutate.
	s.status = req.Target
	s.paymentMethod = paymentMethod
	s.isFreePromo = req.IsFreePromo

	if req.BillingCycle != nil {
		s.billingCycle = req.BillingCycle
	}
	if req.ManualRenewDate != nil {
		s.manualRenewDate = req.ManualRenewDate
	}
	if req.CurrentPeriodEnd != nil {
		s.currentPeriodEnd = req.CurrentPeriodEnd
	}
	if req.PaymentReference != nil {
		s.paymentReference = *req.PaymentReference
	}
	if req.ManualRenewNotes != nil {
		s.manualRenewNotes = *req.ManualRenewNotes
	}

	switch req.Target {
	case vo.StatusTrial:
		trialDays := req.TrialDays
		if trialDays == 0 {
			trialDays = policy.DefaultTrialDays
		}
		trialEnd := now.AddDate(0, 0, trialDays)
		s.trialEndsAt = &trialEnd
	case vo.StatusActive:
		// The billed window governs from here on.
		s.trialEndsAt = nil
	case vo.StatusFree:
		s.trialEndsAt = nil
		s.currentPeriodEnd = nil
		s.manualRenewDate = nil
		s.billingCycle = nil
	}

	s.touch(now)
	return nil
}
