package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "centro/internal/domain/subscription/valueobjects"
)

func methodPtr(m vo.PaymentMethod) *vo.PaymentMethod { return &m }

func defaultPolicy() ServicePolicy {
	return ServicePolicy{HasFreeTier: true, DefaultTrialDays: 14}
}

func TestApplyTransition_ActivateStripe(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, 3))
	periodEnd := testNow.AddDate(0, 1, 0)

	err := sub.ApplyTransition(TransitionRequest{
		Target:           vo.StatusActive,
		BillingCycle:     cyclePtr(vo.BillingCycleMonthly),
		PaymentMethod:    methodPtr(vo.PaymentMethodStripe),
		CurrentPeriodEnd: &periodEnd,
	}, defaultPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.Equal(t, vo.PaymentMethodStripe, sub.PaymentMethod())
	require.NotNil(t, sub.CurrentPeriodEnd())
	assert.True(t, periodEnd.Equal(*sub.CurrentPeriodEnd()))
	assert.Nil(t, sub.TrialEndsAt(), "activation closes the trial window")
}

func TestApplyTransition_ActivateBonificoWithoutDateRejected(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, 3))
	before := sub.Version()

	err := sub.ApplyTransition(TransitionRequest{
		Target:        vo.StatusActive,
		BillingCycle:  cyclePtr(vo.BillingCycleYearly),
		PaymentMethod: methodPtr(vo.PaymentMethodBonifico),
	}, defaultPolicy(), testNow)

	require.ErrorIs(t, err, ErrMissingRenewalDate)

	// Rejected transitions must not leave partial writes.
	assert.Equal(t, vo.StatusTrial, sub.Status())
	assert.Equal(t, vo.PaymentMethodManual, sub.PaymentMethod())
	assert.Nil(t, sub.BillingCycle())
	assert.Equal(t, before, sub.Version())
}

func TestApplyTransition_ActivateBonificoWithDate(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, 3))
	renew := testNow.AddDate(1, 0, 0)
	ref := "bonifico 2025-06-15 inv 1042"

	err := sub.ApplyTransition(TransitionRequest{
		Target:           vo.StatusActive,
		BillingCycle:     cyclePtr(vo.BillingCycleYearly),
		PaymentMethod:    methodPtr(vo.PaymentMethodBonifico),
		ManualRenewDate:  &renew,
		PaymentReference: &ref,
	}, defaultPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	require.NotNil(t, sub.ManualRenewDate())
	assert.True(t, renew.Equal(*sub.ManualRenewDate()))
	assert.Equal(t, ref, sub.PaymentReference())
}

func TestApplyTransition_ActivateFreePromoSkipsBillingChecks(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusExpired})

	err := sub.ApplyTransition(TransitionRequest{
		Target:        vo.StatusActive,
		PaymentMethod: methodPtr(vo.PaymentMethodBonifico),
		IsFreePromo:   true,
	}, defaultPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.True(t, sub.IsFreePromo())

	res := Resolve(sub, testNow.AddDate(1, 0, 0))
	assert.Equal(t, vo.EffectivePro, res.EffectiveStatus)
}

func TestApplyTransition_ActivateWithoutCycleRejected(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusExpired})

	err := sub.ApplyTransition(TransitionRequest{
		Target: vo.StatusActive,
	}, defaultPolicy(), testNow)

	require.ErrorIs(t, err, ErrMissingBillingCycle)
	assert.Equal(t, vo.StatusExpired, sub.Status())
}

func TestApplyTransition_TrialSetsWindow(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusInactive})

	err := sub.ApplyTransition(TransitionRequest{
		Target:    vo.StatusTrial,
		TrialDays: 30,
	}, defaultPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusTrial, sub.Status())
	require.NotNil(t, sub.TrialEndsAt())
	assert.True(t, testNow.AddDate(0, 0, 30).Equal(*sub.TrialEndsAt()))
}

func TestApplyTransition_TrialDefaultsFromPolicy(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusInactive})

	err := sub.ApplyTransition(TransitionRequest{
		Target: vo.StatusTrial,
	}, ServicePolicy{DefaultTrialDays: 7}, testNow)

	require.NoError(t, err)
	require.NotNil(t, sub.TrialEndsAt())
	assert.True(t, testNow.AddDate(0, 0, 7).Equal(*sub.TrialEndsAt()))
}

func TestApplyTransition_TrialDurationBounds(t *testing.T) {
	for _, days := range []int{-1, 91, 365} {
		sub := reconstruct(t, ReconstructParams{Status: vo.StatusInactive})
		err := sub.ApplyTransition(TransitionRequest{
			Target:    vo.StatusTrial,
			TrialDays: days,
		}, defaultPolicy(), testNow)
		assert.ErrorIs(t, err, ErrInvalidTrialDuration, "days=%d", days)
	}

	for _, days := range []int{MinTrialDays, 45, MaxTrialDays} {
		sub := reconstruct(t, ReconstructParams{Status: vo.StatusInactive})
		err := sub.ApplyTransition(TransitionRequest{
			Target:    vo.StatusTrial,
			TrialDays: days,
		}, defaultPolicy(), testNow)
		assert.NoError(t, err, "days=%d", days)
	}
}

func TestApplyTransition_BonificoTrialNeedsRenewalDate(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusInactive})

	err := sub.ApplyTransition(TransitionRequest{
		Target:        vo.StatusTrial,
		TrialDays:     14,
		PaymentMethod: methodPtr(vo.PaymentMethodBonifico),
	}, defaultPolicy(), testNow)

	require.ErrorIs(t, err, ErrMissingRenewalDate)
	assert.Equal(t, vo.StatusInactive, sub.Status())
}

func TestApplyTransition_FreeRequiresFreeTier(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusTrial, TrialEndsAt: timePtr(testNow)})

	err := sub.ApplyTransition(TransitionRequest{Target: vo.StatusFree},
		ServicePolicy{HasFreeTier: false}, testNow)
	require.ErrorIs(t, err, ErrFreeTierUnavailable)
	assert.Equal(t, vo.StatusTrial, sub.Status())

	err = sub.ApplyTransition(TransitionRequest{Target: vo.StatusFree},
		ServicePolicy{HasFreeTier: true}, testNow)
	require.NoError(t, err)
	assert.Equal(t, vo.StatusFree, sub.Status())
	assert.Nil(t, sub.TrialEndsAt())
	assert.Nil(t, sub.BillingCycle())
	assert.Nil(t, sub.ManualRenewDate())
	assert.Nil(t, sub.CurrentPeriodEnd())
}

func TestApplyTransition_ExpiredAndInactiveNotTargets(t *testing.T) {
	for _, target := range []vo.SubscriptionStatus{vo.StatusExpired, vo.StatusInactive} {
		sub := trialSub(t, testNow.AddDate(0, 0, 3))
		err := sub.ApplyTransition(TransitionRequest{Target: target}, defaultPolicy(), testNow)
		assert.ErrorIs(t, err, ErrInvalidTransitionTarget, "target=%s", target)
	}
}

func TestApplyTransition_SuspendAndPastDueNeedNoFields(t *testing.T) {
	for _, target := range []vo.SubscriptionStatus{vo.StatusSuspended, vo.StatusPastDue, vo.StatusCancelled} {
		end := testNow.AddDate(0, 0, 10)
		sub := proSub(t, vo.PaymentMethodStripe, &end, nil, false)
		err := sub.ApplyTransition(TransitionRequest{Target: target}, defaultPolicy(), testNow)
		require.NoError(t, err, "target=%s", target)
		assert.Equal(t, target, sub.Status())
	}
}

func TestApplyTransition_BumpsVersion(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, 3))
	before := sub.Version()

	err := sub.ApplyTransition(TransitionRequest{Target: vo.StatusSuspended}, defaultPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, before+1, sub.Version())
	assert.True(t, testNow.Equal(sub.UpdatedAt()))
}

func TestApplyTransition_KeepsExistingRenewalDate(t *testing.T) {
	// Reactivating a bonifico subscription that already carries a renewal
	// date does not require resubmitting it.
	renew := testNow.AddDate(0, 6, 0)
	sub := reconstruct(t, ReconstructParams{
		Status:          vo.StatusPastDue,
		BillingCycle:    cyclePtr(vo.BillingCycleMonthly),
		ManualRenewDate: &renew,
		PaymentMethod:   vo.PaymentMethodBonifico,
	})

	err := sub.ApplyTransition(TransitionRequest{Target: vo.StatusActive}, defaultPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusActive, sub.Status())
	require.NotNil(t, sub.ManualRenewDate())
	assert.True(t, renew.Equal(*sub.ManualRenewDate()))
}

func TestApplyTransition_RevokingPromoReinstatesDateChecks(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{
		Status:        vo.StatusActive,
		PaymentMethod: vo.PaymentMethodBonifico,
		IsFreePromo:   true,
	})

	err := sub.ApplyTransition(TransitionRequest{
		Target:       vo.StatusActive,
		BillingCycle: cyclePtr(vo.BillingCycleMonthly),
		IsFreePromo:  false,
	}, defaultPolicy(), testNow)

	require.ErrorIs(t, err, ErrMissingRenewalDate)
	assert.True(t, sub.IsFreePromo(), "rejected revocation keeps the promo")
}

func cancelledAfter(t *testing.T, sub *Subscription) *Subscription {
	t.Helper()
	sub.Cancel(testNow)
	return sub
}

func TestCancel_Idempotent(t *testing.T) {
	sub := cancelledAfter(t, trialSub(t, testNow.AddDate(0, 0, 3)))
	v := sub.Version()

	sub.Cancel(testNow.Add(time.Hour))

	assert.Equal(t, vo.StatusCancelled, sub.Status())
	assert.Equal(t, v, sub.Version())
}

func TestMarkAsExpired(t *testing.T) {
	sub := trialSub(t, testNow.AddDate(0, 0, -1))

	require.NoError(t, sub.MarkAsExpired(testNow))
	assert.Equal(t, vo.StatusExpired, sub.Status())

	// Idempotent.
	v := sub.Version()
	require.NoError(t, sub.MarkAsExpired(testNow))
	assert.Equal(t, v, sub.Version())
}

func TestMarkAsExpired_RejectsNonBilledStates(t *testing.T) {
	for _, status := range []vo.SubscriptionStatus{vo.StatusFree, vo.StatusCancelled, vo.StatusSuspended, vo.StatusInactive} {
		sub := reconstruct(t, ReconstructParams{Status: status})
		assert.Error(t, sub.MarkAsExpired(testNow), "status=%s", status)
	}
}
