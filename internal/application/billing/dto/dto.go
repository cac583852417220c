package dto

import "centro/internal/domain/billing"

// DashboardStatsDTO is the admin dashboard rollup.
type DashboardStatsDTO struct {
	Active                  int    `json:"active"`
	Trial                   int    `json:"trial"`
	ExpiringSoon            int    `json:"expiring_soon"`
	MonthlyRevenueCents     int64  `json:"monthly_revenue_cents"`
	MonthlyRevenueFormatted string `json:"monthly_revenue_formatted"`
}

// OrgBillingSummaryDTO is the organization billing view with the agency
// volume discount applied.
type OrgBillingSummaryDTO struct {
	OrganizationSID        string  `json:"organization_sid"`
	AccountType            string  `json:"account_type"`
	ActivityCount          int64   `json:"activity_count"`
	MonthlySubtotalCents   int64   `json:"monthly_subtotal_cents"`
	YearlySubtotalCents    int64   `json:"yearly_subtotal_cents"`
	MonthlyEquivalentCents int64   `json:"monthly_equivalent_cents"`
	DiscountPercent        float64 `json:"discount_percent"`
	DiscountAmountCents    int64   `json:"discount_amount_cents"`
	FinalMonthlyCents      int64   `json:"final_monthly_cents"`
	FinalMonthlyFormatted  string  `json:"final_monthly_formatted"`
	EstimatedYearlyCents   int64   `json:"estimated_yearly_cents"`
}

// FromStats converts a domain rollup.
func FromStats(stats billing.Stats, formatted string) DashboardStatsDTO {
	return DashboardStatsDTO{
		Active:                  stats.Active,
		Trial:                   stats.Trial,
		ExpiringSoon:            stats.ExpiringSoon,
		MonthlyRevenueCents:     stats.MonthlyRevenueCents,
		MonthlyRevenueFormatted: formatted,
	}
}
