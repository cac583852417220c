package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"centro/internal/domain/account"
	"centro/internal/domain/billing"
	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

func testOrganization(t *testing.T, accountType account.AccountType) *account.Organization {
	t.Helper()
	org, err := account.ReconstructOrganization(account.OrganizationReconstructParams{
		ID:           7,
		SID:          "org_agency01",
		Name:         "Studio Rossi",
		AccountType:  accountType,
		BillingEmail: "fatture@studiorossi.it",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return org
}

func testDiscountTable() billing.DiscountTable {
	return billing.DiscountTable{
		{MinActivities: 2, Percent: 10},
		{MinActivities: 5, Percent: 15},
		{MinActivities: 10, Percent: 20},
	}
}

func TestGetOrgBillingSummary_AgencyDiscount(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	orgRepo := new(mockOrganizationRepo)
	actRepo := new(mockActivityRepo)

	orgRepo.On("GetByID", mock.Anything, uint(7)).Return(testOrganization(t, account.AccountTypeAgency), nil)
	actRepo.On("CountByOrganizationID", mock.Anything, uint(7)).Return(int64(5), nil)
	svcRepo.On("List", mock.Anything, true).
		Return([]*catalog.Service{testService(t, "reviews", 2000, 12000)}, nil)
	subRepo.On("GetByOrganizationID", mock.Anything, uint(7)).
		Return([]*subscription.Subscription{
			proSub(t, "reviews", vo.BillingCycleMonthly, false),
			proSub(t, "reviews", vo.BillingCycleYearly, false),
		}, nil)

	uc := NewGetOrgBillingSummaryUseCase(subRepo, svcRepo, orgRepo, actRepo, testDiscountTable(), nopLogger{})

	summary, err := uc.Execute(context.Background(), GetOrgBillingSummaryQuery{OrganizationID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(5), summary.ActivityCount)
	assert.Equal(t, int64(3000), summary.MonthlyEquivalentCents)
	assert.Equal(t, 15.0, summary.DiscountPercent)
	assert.Equal(t, int64(2550), summary.FinalMonthlyCents)
	assert.NotEmpty(t, summary.FinalMonthlyFormatted)
}

func TestGetOrgBillingSummary_SingleAccountGetsNoDiscount(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	orgRepo := new(mockOrganizationRepo)
	actRepo := new(mockActivityRepo)

	orgRepo.On("GetByID", mock.Anything, uint(7)).Return(testOrganization(t, account.AccountTypeSingle), nil)
	// Even if data drift leaves several activities attached, a single
	// account never qualifies.
	actRepo.On("CountByOrganizationID", mock.Anything, uint(7)).Return(int64(3), nil)
	svcRepo.On("List", mock.Anything, true).
		Return([]*catalog.Service{testService(t, "reviews", 2000, 12000)}, nil)
	subRepo.On("GetByOrganizationID", mock.Anything, uint(7)).
		Return([]*subscription.Subscription{proSub(t, "reviews", vo.BillingCycleMonthly, false)}, nil)

	uc := NewGetOrgBillingSummaryUseCase(subRepo, svcRepo, orgRepo, actRepo, testDiscountTable(), nopLogger{})

	summary, err := uc.Execute(context.Background(), GetOrgBillingSummaryQuery{OrganizationID: 7})

	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.DiscountPercent)
	assert.Equal(t, summary.MonthlyEquivalentCents, summary.FinalMonthlyCents)
}

func TestGetOrgBillingSummary_NotFound(t *testing.T) {
	orgRepo := new(mockOrganizationRepo)
	orgRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, account.ErrOrganizationNotFound)

	uc := NewGetOrgBillingSummaryUseCase(
		new(mockSubscriptionRepo), new(mockServiceRepo), orgRepo, new(mockActivityRepo),
		testDiscountTable(), nopLogger{},
	)

	_, err := uc.Execute(context.Background(), GetOrgBillingSummaryQuery{OrganizationID: 99})
	assert.ErrorIs(t, err, account.ErrOrganizationNotFound)
}
