package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "centro/internal/domain/subscription/valueobjects"
)

func TestCanAccess(t *testing.T) {
	cases := []struct {
		status  vo.EffectiveStatus
		allowed bool
	}{
		{vo.EffectiveFree, true},
		{vo.EffectiveTrial, true},
		{vo.EffectivePro, true},
		{vo.EffectivePastDue, true},
		{vo.EffectiveExpired, false},
		{vo.EffectiveCancelled, false},
		{vo.EffectiveSuspended, false},
		{vo.EffectiveInactive, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanAccess(tc.status))
		})
	}
}

func TestCanAccess_UnknownStatusDenied(t *testing.T) {
	assert.False(t, CanAccess(vo.EffectiveStatus("bogus")))
}

// Gate and resolver compose: access always agrees with the resolved status.
func TestCanAccess_AgreesWithResolverIsActive(t *testing.T) {
	subs := []*Subscription{
		nil,
		trialSub(t, testNow.AddDate(0, 0, 5)),
		trialSub(t, testNow.AddDate(0, 0, -5)),
		reconstruct(t, ReconstructParams{Status: vo.StatusFree}),
		reconstruct(t, ReconstructParams{Status: vo.StatusSuspended}),
		reconstruct(t, ReconstructParams{Status: vo.StatusCancelled}),
		proSub(t, vo.PaymentMethodStripe, timePtr(testNow.AddDate(0, 0, 14)), nil, false),
		proSub(t, vo.PaymentMethodBonifico, nil, nil, false),
	}

	for _, sub := range subs {
		res := Resolve(sub, testNow)
		assert.Equal(t, res.IsActive, CanAccess(res.EffectiveStatus),
			"status %s", res.EffectiveStatus)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
