package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

func testService(t *testing.T, hasFreeTier bool) *catalog.Service {
	t.Helper()
	svc, err := catalog.ReconstructService(catalog.ServiceReconstructParams{
		ID:                1,
		SID:               "svc_reviews",
		Code:              "reviews",
		Name:              "Recensioni",
		PriceMonthlyCents: 2000,
		PriceYearlyCents:  20000,
		HasFreeTier:       hasFreeTier,
		TrialDays:         14,
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	})
	require.NoError(t, err)
	return svc
}

func testTrialSubscription(t *testing.T, activityID uint) *subscription.Subscription {
	t.Helper()
	end := time.Now().UTC().AddDate(0, 0, 10)
	sub, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:            1,
		SID:           "sub_test00000001",
		ActivityID:    activityID,
		ServiceCode:   "reviews",
		Status:        vo.StatusTrial,
		TrialEndsAt:   &end,
		PaymentMethod: vo.PaymentMethodManual,
		Version:       1,
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	return sub
}

func stringPtr(s string) *string { return &s }

func TestApplyTransition_ActivatesExisting(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	sub := testTrialSubscription(t, 42)
	renew := time.Now().UTC().AddDate(1, 0, 0)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(sub, nil)
	subRepo.On("Update", mock.Anything, sub).Return(nil)

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, new(stubTxManager), nopLogger{})

	result, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:      42,
		ServiceCode:     "reviews",
		TargetStatus:    "active",
		BillingCycle:    stringPtr("yearly"),
		PaymentMethod:   stringPtr("bonifico"),
		ManualRenewDate: &renew,
	})

	require.NoError(t, err)
	assert.Equal(t, "active", result.Status)
	assert.Equal(t, "pro", result.EffectiveStatus)
	subRepo.AssertExpectations(t)
}

func TestApplyTransition_CreatesMissingRecord(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(nil, nil)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).Return(nil)

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, new(stubTxManager), nopLogger{})

	result, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "trial",
		TrialDays:    30,
	})

	require.NoError(t, err)
	assert.Equal(t, "trial", result.Status)
	require.NotNil(t, result.DaysRemaining)
	assert.Equal(t, 30, *result.DaysRemaining)
	subRepo.AssertExpectations(t)
}

func TestApplyTransition_RetriesOnceOnConflict(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil).Once()
	subRepo.On("Update", mock.Anything, mock.Anything).
		Return(subscription.ErrConcurrentModification).Once()
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil).Once()
	subRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, new(stubTxManager), nopLogger{})

	result, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "suspended",
	})

	require.NoError(t, err)
	assert.Equal(t, "suspended", result.Status)
	subRepo.AssertExpectations(t)
}

func TestApplyTransition_SecondConflictFails(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil)
	subRepo.On("Update", mock.Anything, mock.Anything).
		Return(subscription.ErrConcurrentModification)

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, new(stubTxManager), nopLogger{})

	_, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "cancelled",
	})

	assert.ErrorIs(t, err, subscription.ErrConcurrentModification)
}

func TestApplyTransition_DomainRuleViolationsSurface(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, false), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil)

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, new(stubTxManager), nopLogger{})

	_, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:    42,
		ServiceCode:   "reviews",
		TargetStatus:  "active",
		BillingCycle:  stringPtr("monthly"),
		PaymentMethod: stringPtr("bonifico"),
	})
	assert.ErrorIs(t, err, subscription.ErrMissingRenewalDate)

	_, err = uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "free",
	})
	assert.ErrorIs(t, err, subscription.ErrFreeTierUnavailable)

	subRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApplyTransition_InvalidInput(t *testing.T) {
	uc := NewApplyTransitionUseCase(new(mockSubscriptionRepo), new(mockServiceRepo), new(stubTxManager), nopLogger{})

	_, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ServiceCode:  "reviews",
		TargetStatus: "active",
	})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "superstatus",
	})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "active",
		BillingCycle: stringPtr("weekly"),
	})
	assert.Error(t, err)
}

func TestApplyTransition_RunsInsideTransaction(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	txMgr := new(stubTxManager)
	sub := testTrialSubscription(t, 42)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Run(func(args mock.Arguments) {
			assert.True(t, inStubTransaction(args.Get(0).(context.Context)))
		}).
		Return(sub, nil)
	subRepo.On("Update", mock.Anything, sub).
		Run(func(args mock.Arguments) {
			assert.True(t, inStubTransaction(args.Get(0).(context.Context)))
		}).
		Return(nil)

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "suspended",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, txMgr.calls)
	subRepo.AssertExpectations(t)
}

func TestApplyTransition_RetryOpensFreshTransaction(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)
	txMgr := new(stubTxManager)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil).Once()
	subRepo.On("Update", mock.Anything, mock.Anything).
		Return(subscription.ErrConcurrentModification).Once()
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil).Once()
	subRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	uc := NewApplyTransitionUseCase(subRepo, svcRepo, txMgr, nopLogger{})

	_, err := uc.Execute(context.Background(), ApplyTransitionCommand{
		ActivityID:   42,
		ServiceCode:  "reviews",
		TargetStatus: "suspended",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, txMgr.calls)
	subRepo.AssertExpectations(t)
}
