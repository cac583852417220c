package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "centro/internal/domain/subscription/valueobjects"
)

func standardTable() DiscountTable {
	return DiscountTable{
		{MinActivities: 2, Percent: 10},
		{MinActivities: 5, Percent: 15},
		{MinActivities: 10, Percent: 20},
	}
}

func TestPercentFor(t *testing.T) {
	table := standardTable()

	cases := []struct {
		activities int
		percent    float64
	}{
		{0, 0}, {1, 0},
		{2, 10}, {4, 10},
		{5, 15}, {9, 15},
		{10, 20}, {50, 20},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.percent, table.PercentFor(tc.activities), "activities=%d", tc.activities)
	}
}

func TestPercentFor_UnsortedTable(t *testing.T) {
	table := DiscountTable{
		{MinActivities: 10, Percent: 20},
		{MinActivities: 2, Percent: 10},
		{MinActivities: 5, Percent: 15},
	}

	assert.Equal(t, 15.0, table.PercentFor(7))
}

func TestPercentFor_EmptyTable(t *testing.T) {
	assert.Equal(t, 0.0, DiscountTable{}.PercentFor(100))
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		proEntry(t, vo.BillingCycleMonthly, 2000, 20000, false),
		proEntry(t, vo.BillingCycleYearly, 2000, 12000, false),
	}

	// 5 activities: 15% off the 30 EUR monthly equivalent.
	summary := Summarize(entries, 5, standardTable(), testNow)

	assert.Equal(t, int64(2000), summary.MonthlySubtotalCents)
	assert.Equal(t, int64(12000), summary.YearlySubtotalCents)
	assert.Equal(t, int64(3000), summary.MonthlyEquivalentCents)
	assert.Equal(t, 15.0, summary.DiscountPercent)
	assert.Equal(t, int64(450), summary.DiscountAmountCents)
	assert.Equal(t, int64(2550), summary.FinalMonthlyCents)
	assert.Equal(t, int64(30600), summary.EstimatedYearlyCents)
}

func TestSummarize_NoDiscountBelowThreshold(t *testing.T) {
	entries := []Entry{proEntry(t, vo.BillingCycleMonthly, 2000, 20000, false)}

	summary := Summarize(entries, 1, standardTable(), testNow)

	assert.Equal(t, 0.0, summary.DiscountPercent)
	assert.Equal(t, summary.MonthlyEquivalentCents, summary.FinalMonthlyCents)
}

func TestSummarize_SkipsPromoAndNonPro(t *testing.T) {
	entries := []Entry{
		proEntry(t, vo.BillingCycleMonthly, 2000, 20000, true),
		trialEntry(t, 72*time.Hour),
	}

	summary := Summarize(entries, 10, standardTable(), testNow)

	assert.Equal(t, int64(0), summary.MonthlyEquivalentCents)
	assert.Equal(t, int64(0), summary.FinalMonthlyCents)
	assert.Equal(t, 20.0, summary.DiscountPercent, "the tier still reflects the activity count")
}

func TestSummarize_DiscountRounding(t *testing.T) {
	// 10% of 10,05 EUR is 100.5 cents, rounded to 101.
	entries := []Entry{proEntry(t, vo.BillingCycleMonthly, 1005, 10050, false)}

	summary := Summarize(entries, 2, standardTable(), testNow)

	assert.Equal(t, int64(101), summary.DiscountAmountCents)
	assert.Equal(t, int64(904), summary.FinalMonthlyCents)
}
