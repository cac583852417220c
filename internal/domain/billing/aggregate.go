// Package billing rolls per-service subscription statuses up into the
// activity- and organization-level summaries shown on dashboards and billing
// views. Everything here is a pure function of subscription state and the
// current time.
package billing

import (
	"time"

	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

// Entry pairs a subscription with the prices that apply to it, so the
// aggregator never reaches back into the catalog.
type Entry struct {
	Subscription      *subscription.Subscription
	PriceMonthlyCents int64
	PriceYearlyCents  int64
}

// Stats is the per-scope dashboard rollup.
type Stats struct {
	Active              int   `json:"active"`
	Trial               int   `json:"trial"`
	ExpiringSoon        int   `json:"expiring_soon"`
	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

// Aggregate computes dashboard counters over a set of subscriptions. Counts
// use effective statuses, so a lapsed trial is never counted as active even
// before the expiry sweep has persisted it. Monthly revenue is the
// monthly-equivalent sum (yearly prices spread over twelve months) of billed,
// non-promo subscriptions.
func Aggregate(entries []Entry, now time.Time) Stats {
	var stats Stats

	for _, entry := range entries {
		res := subscription.Resolve(entry.Subscription, now)

		switch res.EffectiveStatus {
		case vo.EffectivePro:
			stats.Active++
		case vo.EffectiveTrial:
			stats.Trial++
		}

		if res.ExpiringSoon() {
			stats.ExpiringSoon++
		}

		if res.EffectiveStatus == vo.EffectivePro && !entry.Subscription.IsFreePromo() {
			stats.MonthlyRevenueCents += monthlyEquivalent(entry)
		}
	}

	return stats
}

func monthlyEquivalent(entry Entry) int64 {
	cycle := vo.BillingCycleMonthly
	if bc := entry.Subscription.BillingCycle(); bc != nil {
		cycle = *bc
	}
	return cycle.MonthlyEquivalentCents(entry.PriceMonthlyCents, entry.PriceYearlyCents)
}
