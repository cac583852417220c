package subscription

import (
	"errors"
	"fmt"
)

var (
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrSubscriptionExists      = errors.New("subscription already exists for activity and service")
	ErrInvalidTransitionTarget = errors.New("invalid transition target status")

	// ErrMissingRenewalDate rejects a bank-transfer pro/trial activation
	// without a manual renewal date to track the next payment.
	ErrMissingRenewalDate = errors.New("manual renewal date required for bank transfer")

	// ErrInvalidTrialDuration rejects trial windows outside the allowed bounds.
	ErrInvalidTrialDuration = fmt.Errorf("trial duration must be between %d and %d days", MinTrialDays, MaxTrialDays)

	// ErrFreeTierUnavailable rejects a free transition on a service that has
	// no free tier.
	ErrFreeTierUnavailable = errors.New("service has no free tier")

	// ErrMissingBillingCycle rejects a paid activation without a billing
	// cycle when the subscription is not a free promo.
	ErrMissingBillingCycle = errors.New("billing cycle required for paid subscription")

	// ErrConcurrentModification signals an optimistic-lock conflict; the
	// caller should reload the subscription and retry.
	ErrConcurrentModification = errors.New("subscription was modified concurrently")
)
