package billing

import (
	"math"
	"sort"
	"time"

	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

// DiscountTier is one step of the agency volume discount table.
type DiscountTier struct {
	MinActivities int
	Percent       float64
}

// DiscountTable is the configured step function mapping activity count to a
// discount percentage. Thresholds live in configuration, not in code.
type DiscountTable []DiscountTier

// PercentFor returns the discount percentage for the given activity count:
// the tier with the highest MinActivities the count reaches.
func (t DiscountTable) PercentFor(activityCount int) float64 {
	sorted := make(DiscountTable, len(t))
	copy(sorted, t)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinActivities < sorted[j].MinActivities
	})

	percent := 0.0
	for _, tier := range sorted {
		if activityCount >= tier.MinActivities {
			percent = tier.Percent
		}
	}
	return percent
}

// Summary is the organization-level billing rollup, with the agency volume
// discount applied to the monthly-equivalent total.
type Summary struct {
	MonthlySubtotalCents   int64   `json:"monthly_subtotal_cents"`
	YearlySubtotalCents    int64   `json:"yearly_subtotal_cents"`
	MonthlyEquivalentCents int64   `json:"monthly_equivalent_cents"`
	DiscountPercent        float64 `json:"discount_percent"`
	DiscountAmountCents    int64   `json:"discount_amount_cents"`
	FinalMonthlyCents      int64   `json:"final_monthly_cents"`
	EstimatedYearlyCents   int64   `json:"estimated_yearly_cents"`
}

// Summarize computes the billing summary for an organization. Only billed,
// non-promo subscriptions that are effectively pro contribute; the discount
// is a step function of how many activities the organization manages.
func Summarize(entries []Entry, activityCount int, table DiscountTable, now time.Time) Summary {
	var summary Summary

	for _, entry := range entries {
		res := subscription.Resolve(entry.Subscription, now)
		if res.EffectiveStatus != vo.EffectivePro || entry.Subscription.IsFreePromo() {
			continue
		}

		cycle := vo.BillingCycleMonthly
		if bc := entry.Subscription.BillingCycle(); bc != nil {
			cycle = *bc
		}

		switch cycle {
		case vo.BillingCycleYearly:
			summary.YearlySubtotalCents += entry.PriceYearlyCents
		default:
			summary.MonthlySubtotalCents += entry.PriceMonthlyCents
		}

		summary.MonthlyEquivalentCents += cycle.MonthlyEquivalentCents(entry.PriceMonthlyCents, entry.PriceYearlyCents)
	}

	summary.DiscountPercent = table.PercentFor(activityCount)
	summary.DiscountAmountCents = int64(math.Round(float64(summary.MonthlyEquivalentCents) * summary.DiscountPercent / 100.0))
	summary.FinalMonthlyCents = summary.MonthlyEquivalentCents - summary.DiscountAmountCents
	summary.EstimatedYearlyCents = summary.FinalMonthlyCents * 12

	return summary
}
