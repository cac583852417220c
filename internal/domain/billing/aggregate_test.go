package billing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

var subSeq uint

func buildSub(t *testing.T, p subscription.ReconstructParams) *subscription.Subscription {
	t.Helper()
	subSeq++
	p.ID = subSeq
	p.SID = fmt.Sprintf("sub_test%08d", subSeq)
	if p.ActivityID == 0 {
		p.ActivityID = subSeq
	}
	if p.ServiceCode == "" {
		p.ServiceCode = "reviews"
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = vo.PaymentMethodManual
	}
	p.Version = 1
	p.CreatedAt = testNow.AddDate(0, -1, 0)
	p.UpdatedAt = p.CreatedAt

	sub, err := subscription.ReconstructSubscription(p)
	require.NoError(t, err)
	return sub
}

func cyclePtr(c vo.BillingCycle) *vo.BillingCycle { return &c }
func timePtr(t time.Time) *time.Time              { return &t }

func proEntry(t *testing.T, cycle vo.BillingCycle, monthly, yearly int64, promo bool) Entry {
	t.Helper()
	return Entry{
		Subscription: buildSub(t, subscription.ReconstructParams{
			Status:          vo.StatusActive,
			BillingCycle:    cyclePtr(cycle),
			ManualRenewDate: timePtr(testNow.AddDate(0, 3, 0)),
			PaymentMethod:   vo.PaymentMethodBonifico,
			IsFreePromo:     promo,
		}),
		PriceMonthlyCents: monthly,
		PriceYearlyCents:  yearly,
	}
}

func trialEntry(t *testing.T, endsIn time.Duration) Entry {
	t.Helper()
	return Entry{
		Subscription: buildSub(t, subscription.ReconstructParams{
			Status:      vo.StatusTrial,
			TrialEndsAt: timePtr(testNow.Add(endsIn)),
		}),
		PriceMonthlyCents: 2000,
		PriceYearlyCents:  20000,
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil, testNow)
	assert.Equal(t, Stats{}, stats)
}

func TestAggregate_MonthlyRevenue(t *testing.T) {
	// One pro at 20 EUR/month, one pro at 120 EUR/year: MRR is 30 EUR.
	entries := []Entry{
		proEntry(t, vo.BillingCycleMonthly, 2000, 20000, false),
		proEntry(t, vo.BillingCycleYearly, 2000, 12000, false),
	}

	stats := Aggregate(entries, testNow)

	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, int64(3000), stats.MonthlyRevenueCents)
}

func TestAggregate_PromoExcludedFromRevenue(t *testing.T) {
	entries := []Entry{
		proEntry(t, vo.BillingCycleMonthly, 2000, 20000, false),
		proEntry(t, vo.BillingCycleMonthly, 2000, 20000, true),
	}

	stats := Aggregate(entries, testNow)

	// Promo grants count as active but contribute nothing.
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, int64(2000), stats.MonthlyRevenueCents)
}

func TestAggregate_CountsUseEffectiveStatus(t *testing.T) {
	// A trial whose window lapsed yesterday still reads trial in storage,
	// but the rollup must not count it.
	entries := []Entry{
		trialEntry(t, 5*24*time.Hour),
		trialEntry(t, -24*time.Hour),
		{
			Subscription: buildSub(t, subscription.ReconstructParams{
				Status:           vo.StatusActive,
				BillingCycle:     cyclePtr(vo.BillingCycleMonthly),
				CurrentPeriodEnd: timePtr(testNow.AddDate(0, 0, -1)),
				PaymentMethod:    vo.PaymentMethodStripe,
			}),
			PriceMonthlyCents: 2000,
		},
	}

	stats := Aggregate(entries, testNow)

	assert.Equal(t, 1, stats.Trial)
	assert.Equal(t, 0, stats.Active)
	assert.Equal(t, int64(0), stats.MonthlyRevenueCents)
}

func TestAggregate_ExpiringSoon(t *testing.T) {
	entries := []Entry{
		trialEntry(t, 3*24*time.Hour),
		trialEntry(t, 30*24*time.Hour),
		{
			Subscription: buildSub(t, subscription.ReconstructParams{
				Status:           vo.StatusActive,
				BillingCycle:     cyclePtr(vo.BillingCycleMonthly),
				CurrentPeriodEnd: timePtr(testNow.Add(6 * 24 * time.Hour)),
				PaymentMethod:    vo.PaymentMethodStripe,
			}),
			PriceMonthlyCents: 2000,
		},
	}

	stats := Aggregate(entries, testNow)

	assert.Equal(t, 2, stats.ExpiringSoon)
}

func TestAggregate_Additive(t *testing.T) {
	a := []Entry{
		proEntry(t, vo.BillingCycleMonthly, 2000, 20000, false),
		trialEntry(t, 3*24*time.Hour),
	}
	b := []Entry{
		proEntry(t, vo.BillingCycleYearly, 2000, 12000, false),
		trialEntry(t, -time.Hour),
	}

	statsA := Aggregate(a, testNow)
	statsB := Aggregate(b, testNow)
	combined := Aggregate(append(append([]Entry{}, a...), b...), testNow)

	assert.Equal(t, statsA.Active+statsB.Active, combined.Active)
	assert.Equal(t, statsA.Trial+statsB.Trial, combined.Trial)
	assert.Equal(t, statsA.ExpiringSoon+statsB.ExpiringSoon, combined.ExpiringSoon)
	assert.Equal(t, statsA.MonthlyRevenueCents+statsB.MonthlyRevenueCents, combined.MonthlyRevenueCents)
}

func TestAggregate_MissingCycleDefaultsToMonthly(t *testing.T) {
	entry := Entry{
		Subscription: buildSub(t, subscription.ReconstructParams{
			Status:          vo.StatusActive,
			ManualRenewDate: timePtr(testNow.AddDate(0, 1, 0)),
			PaymentMethod:   vo.PaymentMethodBonifico,
		}),
		PriceMonthlyCents: 1500,
		PriceYearlyCents:  15000,
	}

	stats := Aggregate([]Entry{entry}, testNow)

	assert.Equal(t, int64(1500), stats.MonthlyRevenueCents)
}
