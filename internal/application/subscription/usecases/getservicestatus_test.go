package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetServiceStatus_MissingRecordIsInactive(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").Return(nil, nil)

	uc := NewGetServiceStatusUseCase(subRepo, nopLogger{})

	status, err := uc.Execute(context.Background(), GetServiceStatusQuery{ActivityID: 42, ServiceCode: "reviews"})

	require.NoError(t, err)
	assert.Equal(t, "inactive", status.EffectiveStatus)
	assert.False(t, status.IsActive)
	assert.Nil(t, status.DaysRemaining)
}

func TestGetServiceStatus_ResolvesTrial(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(testTrialSubscription(t, 42), nil)

	uc := NewGetServiceStatusUseCase(subRepo, nopLogger{})

	status, err := uc.Execute(context.Background(), GetServiceStatusQuery{ActivityID: 42, ServiceCode: "reviews"})

	require.NoError(t, err)
	assert.Equal(t, "trial", status.EffectiveStatus)
	assert.True(t, status.IsActive)
	require.NotNil(t, status.DaysRemaining)
	assert.Equal(t, 10, *status.DaysRemaining)
}

func TestGetServiceStatus_RepositoryError(t *testing.T) {
	subRepo := new(mockSubscriptionRepo)
	subRepo.On("GetByActivityAndService", mock.Anything, uint(42), "reviews").
		Return(nil, errors.New("connection refused"))

	uc := NewGetServiceStatusUseCase(subRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), GetServiceStatusQuery{ActivityID: 42, ServiceCode: "reviews"})
	assert.Error(t, err)
}

func TestGetServiceStatus_Validation(t *testing.T) {
	uc := NewGetServiceStatusUseCase(new(mockSubscriptionRepo), nopLogger{})

	_, err := uc.Execute(context.Background(), GetServiceStatusQuery{ServiceCode: "reviews"})
	assert.Error(t, err)

	_, err = uc.Execute(context.Background(), GetServiceStatusQuery{ActivityID: 42})
	assert.Error(t, err)
}
