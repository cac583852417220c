package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"centro/internal/domain/billing"
	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

func testService(t *testing.T, code string, monthly, yearly int64) *catalog.Service {
	t.Helper()
	svc, err := catalog.ReconstructService(catalog.ServiceReconstructParams{
		ID:                1,
		SID:               "svc_" + code,
		Code:              code,
		Name:              code,
		PriceMonthlyCents: monthly,
		PriceYearlyCents:  yearly,
		TrialDays:         14,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	})
	require.NoError(t, err)
	return svc
}

var subSeq uint

func proSub(t *testing.T, serviceCode string, cycle vo.BillingCycle, promo bool) *subscription.Subscription {
	t.Helper()
	subSeq++
	renew := time.Now().UTC().AddDate(0, 2, 0)
	sub, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:              subSeq,
		SID:             "sub_billing",
		ActivityID:      subSeq,
		ServiceCode:     serviceCode,
		Status:          vo.StatusActive,
		BillingCycle:    &cycle,
		ManualRenewDate: &renew,
		PaymentMethod:   vo.PaymentMethodBonifico,
		IsFreePromo:     promo,
		Version:         1,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	})
	require.NoError(t, err)
	return sub
}

func TestGetDashboardStats_ComputesAndCaches(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	cache := new(mockStatsCache)

	svcRepo.On("List", mock.Anything, true).
		Return([]*catalog.Service{testService(t, "reviews", 2000, 12000)}, nil)
	subRepo.On("List", mock.Anything, subscription.Filter{}).
		Return([]*subscription.Subscription{
			proSub(t, "reviews", vo.BillingCycleMonthly, false),
			proSub(t, "reviews", vo.BillingCycleYearly, false),
		}, int64(2), nil)
	cache.On("GetStats", mock.Anything).Return(nil, nil)
	cache.On("SetStats", mock.Anything, mock.AnythingOfType("*billing.Stats")).Return(nil)

	uc := NewGetDashboardStatsUseCase(subRepo, svcRepo, cache, nopLogger{})

	stats, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, int64(3000), stats.MonthlyRevenueCents)
	assert.NotEmpty(t, stats.MonthlyRevenueFormatted)
	cache.AssertExpectations(t)
}

func TestGetDashboardStats_CacheHitSkipsRepos(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	cache := new(mockStatsCache)

	cache.On("GetStats", mock.Anything).
		Return(&billing.Stats{Active: 5, Trial: 2, MonthlyRevenueCents: 10000}, nil)

	uc := NewGetDashboardStatsUseCase(subRepo, svcRepo, cache, nopLogger{})

	stats, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Active)
	assert.Equal(t, int64(10000), stats.MonthlyRevenueCents)
	subRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGetDashboardStats_CacheFailureDegrades(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	cache := new(mockStatsCache)

	cache.On("GetStats", mock.Anything).Return(nil, assert.AnError)
	cache.On("SetStats", mock.Anything, mock.Anything).Return(assert.AnError)
	svcRepo.On("List", mock.Anything, true).Return([]*catalog.Service{}, nil)
	subRepo.On("List", mock.Anything, subscription.Filter{}).
		Return([]*subscription.Subscription{}, int64(0), nil)

	uc := NewGetDashboardStatsUseCase(subRepo, svcRepo, cache, nopLogger{})

	stats, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.Active)
}
