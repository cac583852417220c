package subscription

import (
	"time"

	vo "centro/internal/domain/subscription/valueobjects"
	"centro/internal/shared/biztime"
	"centro/internal/shared/constants"
)

// Resolution is the time-corrected view of a subscription: the status shown
// on badges, whether the activity may use the service, and how many days are
// left on the current window (nil when no window applies).
type Resolution struct {
	EffectiveStatus vo.EffectiveStatus
	IsActive        bool
	DaysRemaining   *int
}

// ExpiringSoon reports whether the subscription is active and inside the
// urgency window. A zero-day remainder means the deadline is right now, which
// is handled by expiry, not by the urgency flag.
func (r Resolution) ExpiringSoon() bool {
	return r.IsActive && r.DaysRemaining != nil &&
		*r.DaysRemaining > 0 && *r.DaysRemaining <= constants.ExpiringSoonDays
}

// Resolve derives the effective status of a subscription at the given
// instant. It is a pure function: safe to call concurrently and repeatedly,
// it never fails, and malformed records degrade to their most conservative
// reading (a trial without an end date is already expired).
//
// A nil subscription means no record exists for the (activity, service)
// pair, which resolves to inactive rather than erroring.
func Resolve(s *Subscription, now time.Time) Resolution {
	if s == nil {
		return Resolution{EffectiveStatus: vo.EffectiveInactive}
	}

	switch s.status {
	case vo.StatusCancelled:
		return Resolution{EffectiveStatus: vo.EffectiveCancelled}

	case vo.StatusSuspended:
		// Data retained, access blocked.
		return Resolution{EffectiveStatus: vo.EffectiveSuspended}

	case vo.StatusTrial:
		if s.trialEndsAt == nil || biztime.IsExpired(now, *s.trialEndsAt) {
			return expiredResolution()
		}
		days := biztime.DaysUntilCeil(now, *s.trialEndsAt)
		return Resolution{
			EffectiveStatus: vo.EffectiveTrial,
			IsActive:        true,
			DaysRemaining:   &days,
		}

	case vo.StatusActive, vo.StatusPastDue:
		if s.isFreePromo {
			// Promo grants never expire regardless of any stale dates.
			return Resolution{EffectiveStatus: vo.EffectivePro, IsActive: true}
		}

		expiry := s.renewalDeadline()
		if expiry == nil || biztime.IsExpired(now, *expiry) {
			return expiredResolution()
		}

		effective := vo.EffectivePro
		if s.status == vo.StatusPastDue {
			effective = vo.EffectivePastDue
		}
		days := biztime.DaysUntilCeil(now, *expiry)
		return Resolution{
			EffectiveStatus: effective,
			IsActive:        true,
			DaysRemaining:   &days,
		}

	case vo.StatusFree:
		return Resolution{EffectiveStatus: vo.EffectiveFree, IsActive: true}

	case vo.StatusExpired:
		return expiredResolution()

	case vo.StatusInactive:
		return Resolution{EffectiveStatus: vo.EffectiveInactive}

	default:
		// Unknown stored value: fail to the safe default.
		return Resolution{EffectiveStatus: vo.EffectiveInactive}
	}
}

// renewalDeadline picks which date governs expiry of a billed subscription.
// The automatic Stripe period end wins when the payment method is automatic;
// otherwise the admin-maintained manual renewal date governs (bonifico), with
// either date serving as fallback when only one is set.
func (s *Subscription) renewalDeadline() *time.Time {
	if s.paymentMethod.IsAutomatic() && s.currentPeriodEnd != nil {
		return s.currentPeriodEnd
	}
	if s.manualRenewDate != nil {
		return s.manualRenewDate
	}
	return s.currentPeriodEnd
}

func expiredResolution() Resolution {
	zero := 0
	return Resolution{
		EffectiveStatus: vo.EffectiveExpired,
		DaysRemaining:   &zero,
	}
}
