package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	svc, err := NewService("  Gestionale ", "Gestionale", 2000, 12000, 14)
	require.NoError(t, err)

	assert.Equal(t, "gestionale", svc.Code())
	assert.Equal(t, int64(2000), svc.PriceMonthlyCents())
	assert.Equal(t, 14, svc.TrialDays())
	assert.False(t, svc.HasFreeTier())
	assert.False(t, svc.Archived())
	assert.NotEmpty(t, svc.SID())
}

func TestNewService_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		svcName   string
		monthly   int64
		yearly    int64
		trialDays int
	}{
		{"empty code", "", "Name", 100, 1000, 7},
		{"empty name", "code", "", 100, 1000, 7},
		{"negative monthly", "code", "Name", -1, 1000, 7},
		{"negative trial days", "code", "Name", 100, 1000, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.code, tt.svcName, tt.monthly, tt.yearly, tt.trialDays)
			assert.Error(t, err)
		})
	}
}

func TestService_FreeTierToggle(t *testing.T) {
	svc, err := NewService("fatture", "Fatture", 1000, 10000, 7)
	require.NoError(t, err)

	svc.EnableFreeTier()
	assert.True(t, svc.HasFreeTier())

	svc.DisableFreeTier()
	assert.False(t, svc.HasFreeTier())
}

func TestService_Archive(t *testing.T) {
	svc, err := NewService("corsi", "Corsi", 1500, 15000, 30)
	require.NoError(t, err)

	svc.Archive()
	assert.True(t, svc.Archived())
}

func TestService_SetID(t *testing.T) {
	svc, err := NewService("sito", "Sito", 500, 5000, 7)
	require.NoError(t, err)

	require.NoError(t, svc.SetID(3))
	assert.Equal(t, uint(3), svc.ID())
	assert.Error(t, svc.SetID(4))
}

func TestNewPlan(t *testing.T) {
	plan, err := NewPlan(1, "pro", "Pro", 2000, 20000, []string{"reports", "export"})
	require.NoError(t, err)

	assert.Equal(t, "pro", plan.Code())
	assert.Equal(t, uint(1), plan.ServiceID())
	assert.False(t, plan.IsDefault())

	plan.MarkDefault()
	assert.True(t, plan.IsDefault())
}

func TestNewPlan_RequiresService(t *testing.T) {
	_, err := NewPlan(0, "pro", "Pro", 2000, 20000, nil)
	assert.Error(t, err)
}

func TestPlan_UpdatePricing(t *testing.T) {
	plan, err := NewPlan(1, "base", "Base", 1000, 10000, nil)
	require.NoError(t, err)

	require.NoError(t, plan.UpdatePricing(1200, 11000))
	assert.Equal(t, int64(1200), plan.PriceMonthlyCents())

	assert.Error(t, plan.UpdatePricing(-1, 11000))
}
