package subscription

import vo "centro/internal/domain/subscription/valueobjects"

// CanAccess decides whether the owning activity may use the service given an
// effective status. Past due still grants access: the client has not paid yet
// but intends to continue, and blocking immediately would punish a pending
// bank transfer. Superadmin bypass is a route-guard concern and never changes
// the tenant's own outcome here.
func CanAccess(effective vo.EffectiveStatus) bool {
	switch effective {
	case vo.EffectiveFree, vo.EffectiveTrial, vo.EffectivePro, vo.EffectivePastDue:
		return true
	case vo.EffectiveInactive, vo.EffectiveExpired, vo.EffectiveCancelled, vo.EffectiveSuspended:
		return false
	default:
		return false
	}
}
