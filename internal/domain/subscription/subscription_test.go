package subscription

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "centro/internal/domain/subscription/valueobjects"
)

func TestNewTrialSubscription(t *testing.T) {
	sub, err := NewTrialSubscription(42, "reviews", 14, testNow)

	require.NoError(t, err)
	assert.Equal(t, uint(42), sub.ActivityID())
	assert.Equal(t, "reviews", sub.ServiceCode())
	assert.Equal(t, vo.StatusTrial, sub.Status())
	assert.True(t, strings.HasPrefix(sub.SID(), "sub_"))
	require.NotNil(t, sub.TrialEndsAt())
	assert.True(t, testNow.AddDate(0, 0, 14).Equal(*sub.TrialEndsAt()))
	assert.Equal(t, 1, sub.Version())
	require.NoError(t, sub.Validate())
}

func TestNewTrialSubscription_Invalid(t *testing.T) {
	_, err := NewTrialSubscription(0, "reviews", 14, testNow)
	assert.Error(t, err)

	_, err = NewTrialSubscription(42, "", 14, testNow)
	assert.Error(t, err)

	_, err = NewTrialSubscription(42, "reviews", 0, testNow)
	assert.ErrorIs(t, err, ErrInvalidTrialDuration)

	_, err = NewTrialSubscription(42, "reviews", MaxTrialDays+1, testNow)
	assert.ErrorIs(t, err, ErrInvalidTrialDuration)
}

func TestNewFreeSubscription(t *testing.T) {
	sub, err := NewFreeSubscription(42, "menu", testNow)

	require.NoError(t, err)
	assert.Equal(t, vo.StatusFree, sub.Status())
	assert.Nil(t, sub.TrialEndsAt())
	assert.Nil(t, sub.BillingCycle())
	require.NoError(t, sub.Validate())
}

func TestReconstructSubscription_Invalid(t *testing.T) {
	base := ReconstructParams{
		ID:            1,
		SID:           "sub_x",
		ActivityID:    10,
		ServiceCode:   "reviews",
		Status:        vo.StatusFree,
		PaymentMethod: vo.PaymentMethodManual,
		Version:       1,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
	}

	p := base
	p.ID = 0
	_, err := ReconstructSubscription(p)
	assert.Error(t, err)

	p = base
	p.Status = "bogus"
	_, err = ReconstructSubscription(p)
	assert.Error(t, err)

	p = base
	p.PaymentMethod = "cash"
	_, err = ReconstructSubscription(p)
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	sub, err := NewFreeSubscription(42, "menu", testNow)
	require.NoError(t, err)

	require.NoError(t, sub.SetID(7))
	assert.Equal(t, uint(7), sub.ID())

	assert.Error(t, sub.SetID(8), "ID is immutable once set")
	assert.Error(t, trialSub(t, testNow).SetID(0))
}

func TestValidate_TrialNeedsEndDate(t *testing.T) {
	sub := reconstruct(t, ReconstructParams{Status: vo.StatusTrial})
	assert.Error(t, sub.Validate())
}
