package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
)

func TestCancelSubscription(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	sub := testTrialSubscription(t, 42)

	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(sub, nil)
	subRepo.On("Update", mock.Anything, sub).Return(nil)

	uc := NewCancelSubscriptionUseCase(subRepo, nopLogger{})

	err := uc.Execute(context.Background(), CancelSubscriptionCommand{ActivityID: 42, ServiceCode: "reviews"})

	require.NoError(t, err)
	assert.Equal(t, vo.StatusCancelled, sub.Status())
	subRepo.AssertExpectations(t)
}

func TestCancelSubscription_NotFound(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(nil, nil)

	uc := NewCancelSubscriptionUseCase(subRepo, nopLogger{})

	err := uc.Execute(context.Background(), CancelSubscriptionCommand{ActivityID: 42, ServiceCode: "reviews"})
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestFindExpiring_FiltersPromoAndLapsed(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)

	soon := reconstructForTest(t, 1, time.Now().UTC().AddDate(0, 0, 3))
	lapsed := reconstructForTest(t, 2, time.Now().UTC().AddDate(0, 0, -1))
	promo := lapsedSub(t, 3, true)

	subRepo.On("FindExpiring", mock.Anything, mock.Anything, 7).
		Return([]*subscription.Subscription{soon, lapsed, promo}, nil)

	uc := NewFindExpiringUseCase(subRepo, nopLogger{})

	expiring, err := uc.Execute(context.Background(), FindExpiringQuery{})

	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, uint(1), expiring[0].ActivityID)
}
