package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/billing/dto"
	"centro/internal/domain/account"
	"centro/internal/domain/billing"
	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

type GetOrgBillingSummaryQuery struct {
	OrganizationID uint
}

// GetOrgBillingSummaryUseCase computes what an organization pays per month
// across all its activities, with the agency volume discount applied. Single
// accounts never reach a discount tier because they manage one activity.
type GetOrgBillingSummaryUseCase struct {
	subscriptionRepo subscription.Repository
	serviceRepo      catalog.ServiceRepository
	organizationRepo account.OrganizationRepository
	activityRepo     account.ActivityRepository
	discountTable    billing.DiscountTable
	logger           logger.Interface
}

func NewGetOrgBillingSummaryUseCase(
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	organizationRepo account.OrganizationRepository,
	activityRepo account.ActivityRepository,
	discountTable billing.DiscountTable,
	logger logger.Interface,
) *GetOrgBillingSummaryUseCase {
	return &GetOrgBillingSummaryUseCase{
		subscriptionRepo: subscriptionRepo,
		serviceRepo:      serviceRepo,
		organizationRepo: organizationRepo,
		activityRepo:     activityRepo,
		discountTable:    discountTable,
		logger:           logger,
	}
}

func (uc *GetOrgBillingSummaryUseCase) Execute(ctx context.Context, query GetOrgBillingSummaryQuery) (*dto.OrgBillingSummaryDTO, error) {
	if query.OrganizationID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}

	org, err := uc.organizationRepo.GetByID(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to get organization", "error", err, "organization_id", query.OrganizationID)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	activityCount, err := uc.activityRepo.CountByOrganizationID(ctx, query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to count activities", "error", err, "organization_id", query.OrganizationID)
		return nil, fmt.Errorf("failed to count activities: %w", err)
	}

	entries, err := loadEntries(ctx, uc.subscriptionRepo, uc.serviceRepo, &query.OrganizationID)
	if err != nil {
		uc.logger.Errorw("failed to load billing entries", "error", err, "organization_id", query.OrganizationID)
		return nil, err
	}

	// Only agencies qualify for volume discounts.
	table := uc.discountTable
	if !org.IsAgency() {
		table = nil
	}

	summary := billing.Summarize(entries, int(activityCount), table, biztime.NowUTC())

	return &dto.OrgBillingSummaryDTO{
		OrganizationSID:        org.SID(),
		AccountType:            string(org.AccountType()),
		ActivityCount:          activityCount,
		MonthlySubtotalCents:   summary.MonthlySubtotalCents,
		YearlySubtotalCents:    summary.YearlySubtotalCents,
		MonthlyEquivalentCents: summary.MonthlyEquivalentCents,
		DiscountPercent:        summary.DiscountPercent,
		DiscountAmountCents:    summary.DiscountAmountCents,
		FinalMonthlyCents:      summary.FinalMonthlyCents,
		FinalMonthlyFormatted:  utils.FormatCents(summary.FinalMonthlyCents),
		EstimatedYearlyCents:   summary.EstimatedYearlyCents,
	}, nil
}
