package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "centro/internal/domain/subscription/valueobjects"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// --- helpers ---

func reconstruct(t *testing.T, p ReconstructParams) *Subscription {
	t.Helper()
	if p.ID == 0 {
		p.ID = 1
	}
	if p.ActivityID == 0 {
		p.ActivityID = 10
	}
	if p.ServiceCode == "" {
		p.ServiceCode = "reviews"
	}
	if p.SID == "" {
		p.SID = "sub_test00000001"
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = vo.PaymentMethodManual
	}
	if p.Version == 0 {
		p.Version = 1
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = testNow.AddDate(0, -1, 0)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	sub, err := ReconstructSubscription(p)
	require.NoError(t, err)
	return sub
}

func trialSub(t *testing.T, trialEndsAt time.Time) *Subscription {
	t.Helper()
	return reconstruct(t, ReconstructParams{
		Status:      vo.StatusTrial,
		TrialEndsAt: &trialEndsAt,
	})
}

func cyclePtr(c vo.BillingCycle) *vo.BillingCycle { return &c }

func proSub(t *testing.T, method vo.PaymentMethod, periodEnd, manualRenew *time.Time, promo bool) *Subscription {
	t.Helper()
	return reconstruct(t, ReconstructParams{
		Status:           vo.StatusActive,
		BillingCycle:     cyclePtr(vo.BillingCycleMonthly),
		CurrentPeriodEnd: periodEnd,
		ManualRenewDate:  manualRenew,
		PaymentMethod:    method,
		IsFreePromo:      promo,
	})
}

// =====================================================================
// Resolve: terminal and simple statuses
// =====================================================================

func TestResolve_NilSubscriptionIsInactive(t *testing.T) {
	res := Resolve(nil, testNow)

	assert.Equal(t, vo.EffectiveInactive, res.EffectiveStatus)
	assert.False(t, res.IsActive)
	assert.Nil(t, res.DaysRemaining)
}

func TestResolve_Cancelled(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusCancelled})

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveCancelled, res.EffectiveStatus)
	assert.False(t, res.IsActive)
	assert.Nil(t, res.DaysRemaining)
}

func TestResolve_Suspended(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusSuspended})

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveSuspended, res.EffectiveStatus)
	assert.False(t, res.IsActive)
	assert.Nil(t, res.DaysRemaining)
}

func TestResolve_Free(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusFree})

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveFree, res.EffectiveStatus)
	assert.True(t, res.IsActive)
	assert.Nil(t, res.DaysRemaining)
}

func TestResolve_Inactive(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusInactive})

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveInactive, res.EffectiveStatus)
	assert.False(t, res.IsActive)
}

// =====================================================================
// Resolve: trial
// =====================================================================

func TestResolve_TrialWithDaysLeft(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, 3))

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveTrial, res.EffectiveStatus)
	assert.True(t, res.IsActive)
	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 3, *res.DaysRemaining)
}

func TestResolve_TrialPartialDayRoundsUp(t *testing.T) {
	// Ends in two hours: still one day, never zero while active.
	sub := trialSub(t, testNow.Add(2*time.Hour))

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveTrial, res.EffectiveStatus)
	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 1, *res.DaysRemaining)
}

func TestResolve_TrialExpired(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, -1))

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveExpired, res.EffectiveStatus)
	assert.False(t, res.IsActive)
	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 0, *res.DaysRemaining)
}

func TestResolve_TrialBoundary(t *testing.T) {
	end := testNow

	// Exactly at the deadline: still trialing.
	res := Resolve(trialSub(t, end), testNow)
	assert.Equal(t, vo.EffectiveTrial, res.EffectiveStatus)
	assert.True(t, res.IsActive)

	// One millisecond past: expired.
	res = Resolve(trialSub(t, end), testNow.Add(time.Millisecond))
	assert.Equal(t, vo.EffectiveExpired, res.EffectiveStatus)
	assert.False(t, res.IsActive)
}

func TestResolve_TrialMissingEndDateIsExpired(t *testing.T) {
	// Malformed record: conservative reading, not an error.
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusTrial})

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveExpired, res.EffectiveStatus)
	assert.False(t, res.IsActive)
}

func TestResolve_TrialDaysRemainingMonotonic(t *testing.T) {
	end := testNow.AddDate(0, 0, 10)
	sub := trialSub(t, end)

	prev := 11
	expiredSeen := false
	for hours := 0; hours <= 12*24; hours += 6 {
		now := testNow.Add(time.Duration(hours) * time.Hour)
		res := Resolve(sub, now)

		if res.EffectiveStatus == vo.EffectiveExpired {
			expiredSeen = true
			assert.True(t, now.After(end), "expired before the deadline passed")
			continue
		}

		require.False(t, expiredSeen, "went back from expired to trial")
		require.NotNil(t, res.DaysRemaining)
		assert.LessOrEqual(t, *res.DaysRemaining, prev, "daysRemaining increased over time")
		prev = *res.DaysRemaining
	}
	assert.True(t, expiredSeen)
}

// =====================================================================
// Resolve: pro / past_due
// =====================================================================

func TestResolve_ProWithStripePeriod(t *testing.T) {
	end := testNow.AddDate(0, 0, 20)
	sub := proSub(t, vo.PaymentMethodStripe, &end, nil, false)

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectivePro, res.EffectiveStatus)
	assert.True(t, res.IsActive)
	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 20, *res.DaysRemaining)
}

func TestResolve_ProStripePeriodLapsed(t *testing.T) {
	end := testNow.AddDate(0, 0, -1)
	sub := proSub(t, vo.PaymentMethodStripe, &end, nil, false)

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveExpired, res.EffectiveStatus)
	assert.False(t, res.IsActive)
	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 0, *res.DaysRemaining)
}

func TestResolve_ProBonificoUsesManualRenewDate(t *testing.T) {
	// Stale period end from an old Stripe cycle must not win for bonifico.
	staleEnd := testNow.AddDate(0, 0, -30)
	manual := testNow.AddDate(0, 0, 15)
	sub := proSub(t, vo.PaymentMethodBonifico, &staleEnd, &manual, false)

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectivePro, res.EffectiveStatus)
	assert.True(t, res.IsActive)
	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 15, *res.DaysRemaining)
}

func TestResolve_ProStripePrefersAutomaticDate(t *testing.T) {
	periodEnd := testNow.AddDate(0, 0, 5)
	manual := testNow.AddDate(0, 0, 60)
	sub := proSub(t, vo.PaymentMethodStripe, &periodEnd, &manual, false)

	res := Resolve(sub, testNow)

	require.NotNil(t, res.DaysRemaining)
	assert.Equal(t, 5, *res.DaysRemaining)
}

func TestResolve_ProNoDatesIsExpired(t *testing.T) {
	sub := proSub(t, vo.PaymentMethodBonifico, nil, nil, false)

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectiveExpired, res.EffectiveStatus)
	assert.False(t, res.IsActive)
}

func TestResolve_FreePromoNeverExpires(t *testing.T) {
	// Both dates long past: promo grants are immune.
	staleEnd := testNow.AddDate(-1, 0, 0)
	staleManual := testNow.AddDate(0, -6, 0)
	sub := proSub(t, vo.PaymentMethodBonifico, &staleEnd, &staleManual, true)

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectivePro, res.EffectiveStatus)
	assert.True(t, res.IsActive)
	assert.Nil(t, res.DaysRemaining)
}

func TestResolve_PastDueKeepsLabel(t *testing.T) {
	manual := testNow.AddDate(0, 0, 10)
	sub := reconstruct(t, ReconstructParams{
		Status:          vo.StatusPastDue,
		BillingCycle:    cyclePtr(vo.BillingCycleMonthly),
		ManualRenewDate: &manual,
		PaymentMethod:   vo.PaymentMethodBonifico,
	})

	res := Resolve(sub, testNow)

	assert.Equal(t, vo.EffectivePastDue, res.EffectiveStatus)
	assert.True(t, res.IsActive)
}

// =====================================================================
// Resolve: purity and expiring-soon
// =====================================================================

func TestResolve_Idempotent(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, 5))

	first := Resolve(sub, testNow)
	second := Resolve(sub, testNow)

	assert.Equal(t, first.EffectiveStatus, second.EffectiveStatus)
	assert.Equal(t, first.IsActive, second.IsActive)
	require.NotNil(t, second.DaysRemaining)
	assert.Equal(t, *first.DaysRemaining, *second.DaysRemaining)
}

func TestResolution_ExpiringSoon(t *testing.T) {
	cases := []struct {
		name     string
		endIn    time.Duration
		expected bool
	}{
		{"three days left", 72 * time.Hour, true},
		{"seven days left", 7 * 24 * time.Hour, true},
		{"eight days left", 8 * 24 * time.Hour, false},
		{"thirty days left", 30 * 24 * time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := trialSub(t, testNow.Add(tc.endIn))
			res := Resolve(sub, testNow)
			assert.Equal(t, tc.expected, res.ExpiringSoon())
		})
	}
}

func TestResolution_ExpiredIsNotExpiringSoon(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, -1))
	res := Resolve(sub, testNow)
	assert.False(t, res.ExpiringSoon())
}

func TestResolution_NoWindowIsNotExpiringSoon(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusFree})
	res := Resolve(sub, testNow)
	assert.False(t, res.ExpiringSoon())
}
