package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBillingCycle(t *testing.T) {
	cycle, err := ParseBillingCycle("  Monthly ")
	require.NoError(t, err)
	assert.Equal(t, BillingCycleMonthly, cycle)

	cycle, err = ParseBillingCycle("yearly")
	require.NoError(t, err)
	assert.Equal(t, BillingCycleYearly, cycle)

	_, err = ParseBillingCycle("")
	assert.Error(t, err)

	_, err = ParseBillingCycle("weekly")
	assert.Error(t, err)
}

func TestNextBillingDate(t *testing.T) {
	from := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC),
		BillingCycleMonthly.NextBillingDate(from), "Jan 31 + 1 month normalizes past February")
	assert.Equal(t, time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC),
		BillingCycleYearly.NextBillingDate(from))
	assert.True(t, BillingCycle("bogus").NextBillingDate(from).IsZero())
}

func TestMonthlyEquivalentCents(t *testing.T) {
	// 20 EUR/month or 120 EUR/year.
	assert.Equal(t, int64(2000), BillingCycleMonthly.MonthlyEquivalentCents(2000, 12000))
	assert.Equal(t, int64(1000), BillingCycleYearly.MonthlyEquivalentCents(2000, 12000))

	// Non-divisible yearly price truncates.
	assert.Equal(t, int64(833), BillingCycleYearly.MonthlyEquivalentCents(0, 10000))
}

func TestParsePaymentMethod(t *testing.T) {
	method, err := ParsePaymentMethod("STRIPE")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodStripe, method)

	_, err = ParsePaymentMethod("cash")
	assert.Error(t, err)

	_, err = ParsePaymentMethod("")
	assert.Error(t, err)
}

func TestPaymentMethodIsAutomatic(t *testing.T) {
	assert.True(t, PaymentMethodStripe.IsAutomatic())
	assert.False(t, PaymentMethodBonifico.IsAutomatic())
	assert.False(t, PaymentMethodManual.IsAutomatic())
}

func TestIsAdminTransitionTarget(t *testing.T) {
	allowed := []SubscriptionStatus{
		StatusFree, StatusTrial, StatusActive, StatusPastDue, StatusCancelled, StatusSuspended,
	}
	for _, s := range allowed {
		assert.True(t, s.IsAdminTransitionTarget(), "status=%s", s)
	}

	for _, s := range []SubscriptionStatus{StatusInactive, StatusExpired, "bogus"} {
		assert.False(t, s.IsAdminTransitionTarget(), "status=%s", s)
	}
}

func TestSubscriptionStatusIsValid(t *testing.T) {
	for s := range ValidStatuses {
		assert.True(t, s.IsValid())
	}
	assert.False(t, SubscriptionStatus("pro").IsValid(), "pro is effective-only, never stored")
}
