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

func reconstructForTest(t *testing.T, activityID uint, trialEnd time.Time) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:            1,
		SID:           "sub_test00000001",
		ActivityID:    activityID,
		ServiceCode:   "reviews",
		Status:        vo.StatusTrial,
		TrialEndsAt:   &trialEnd,
		PaymentMethod: vo.PaymentMethodManual,
		Version:       1,
		CreatedAt:     time.Now().UTC().AddDate(0, -1, 0),
		UpdatedAt:     time.Now().UTC().AddDate(0, -1, 0),
	})
	require.NoError(t, err)
	return sub
}

func TestActivateTrial_CreatesSubscription(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(nil, nil)
	subRepo.On("Create", mock.Anything, mock.AnythingOfType("*subscription.Subscription")).Return(nil)

	uc := NewActivateTrialUseCase(subRepo, svcRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), ActivateTrialCommand{ActivityID: 42, ServiceCode: "reviews"})

	require.NoError(t, err)
	assert.Equal(t, "trial", result.Status)
	assert.True(t, result.IsActive)
	require.NotNil(t, result.DaysRemaining)
	assert.Equal(t, 14, *result.DaysRemaining)
	subRepo.AssertExpectations(t)
}

func TestActivateTrial_ExistingRecordRejected(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil)

	uc := NewActivateTrialUseCase(subRepo, svcRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), ActivateTrialCommand{ActivityID: 42, ServiceCode: "reviews"})

	assert.ErrorIs(t, err, subscription.ErrSubscriptionExists)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivateTrial_ArchivedServiceRejected(t *testing.T) {
	svcRepo := new(mockServiceRepo)
	archived, err := catalog.ReconstructService(catalog.ServiceReconstructParams{
		ID:        1,
		Code:      "legacy",
		Name:      "Legacy",
		Archived:  true,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	svcRepo.On("GetByCode", mock.Anything, "legacy").Return(archived, nil)

	uc := NewActivateTrialUseCase(new(mockSubscriptionRepo), svcRepo, nopLogger{})

	_, err = uc.Execute(context.Background(), ActivateTrialCommand{ActivityID: 42, ServiceCode: "legacy"})
	assert.ErrorIs(t, err, catalog.ErrServiceArchived)
}

func TestActivateFree_DowngradeFromExpired(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	end := time.Now().UTC().AddDate(0, 0, -10)
	expired := reconstructForTest(t, 42, end)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(expired, nil)
	subRepo.On("Update", mock.Anything, expired).Return(nil)

	uc := NewActivateFreeUseCase(subRepo, svcRepo, nopLogger{})

	result, err := uc.Execute(context.Background(), ActivateFreeCommand{ActivityID: 42, ServiceCode: "reviews"})

	require.NoError(t, err)
	assert.Equal(t, "free", result.Status)
	assert.True(t, result.IsActive)
}

func TestActivateFree_LiveSubscriptionRejected(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	svcRepo := new(mockServiceRepo)

	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, true), nil)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil)

	uc := NewActivateFreeUseCase(subRepo, svcRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), ActivateFreeCommand{ActivityID: 42, ServiceCode: "reviews"})
	assert.ErrorIs(t, err, subscription.ErrSubscriptionExists)
}

func TestActivateFree_NoFreeTier(t *testing.T) {
	svcRepo := new(mockServiceRepo)
	svcRepo.On("GetByCode", mock.Anything, "reviews").Return(testService(t, false), nil)

	uc := NewActivateFreeUseCase(new(mockSubscriptionRepo), svcRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), ActivateFreeCommand{ActivityID: 42, ServiceCode: "reviews"})
	assert.ErrorIs(t, err, subscription.ErrFreeTierUnavailable)
}
