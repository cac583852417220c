package valueobjects

// SubscriptionStatus is the persisted status of a subscription. It is the raw
// stored value; the status shown to users is derived by the resolver.
type SubscriptionStatus string

const (
	StatusInactive  SubscriptionStatus = "inactive"
	StatusFree      SubscriptionStatus = "free"
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusPastDue   SubscriptionStatus = "past_due"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
	StatusSuspended SubscriptionStatus = "suspended"
)

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusInactive:  true,
	StatusFree:      true,
	StatusTrial:     true,
	StatusActive:    true,
	StatusPastDue:   true,
	StatusExpired:   true,
	StatusCancelled: true,
	StatusSuspended: true,
}

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

// IsAdminTransitionTarget reports whether an admin may move a subscription to
// this status. Expired is time-driven only and inactive is the initial state;
// neither is a valid explicit target. Everything else is reachable from any
// prior state: suspended/cancelled/past_due are blocking states, and
// free/trial/active also cover reactivation of expired or cancelled records.
func (s SubscriptionStatus) IsAdminTransitionTarget() bool {
	switch s {
	case StatusFree, StatusTrial, StatusActive, StatusPastDue, StatusCancelled, StatusSuspended:
		return true
	case StatusInactive, StatusExpired:
		return false
	default:
		return false
	}
}

// EffectiveStatus is the time-corrected status derived from a stored
// subscription, the value shown on badges and used for access gating.
type EffectiveStatus string

const (
	EffectiveInactive  EffectiveStatus = "inactive"
	EffectiveFree      EffectiveStatus = "free"
	EffectiveTrial     EffectiveStatus = "trial"
	EffectivePro       EffectiveStatus = "pro"
	EffectivePastDue   EffectiveStatus = "past_due"
	EffectiveExpired   EffectiveStatus = "expired"
	EffectiveCancelled EffectiveStatus = "cancelled"
	EffectiveSuspended EffectiveStatus = "suspended"
)

func (s EffectiveStatus) String() string {
	return string(s)
}
