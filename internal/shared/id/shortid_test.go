package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	id, err := Generate(12)
	require.NoError(t, err)
	assert.Len(t, id, 12)

	// non-positive length falls back to default
	id, err = Generate(0)
	require.NoError(t, err)
	assert.Len(t, id, DefaultLength)
}

func TestGenerateWithPrefix(t *testing.T) {
	id, err := GenerateWithPrefix(PrefixSubscription, 12)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "sub_"))
	assert.Len(t, id, len("sub_")+12)
}

func TestValidatePrefix(t *testing.T) {
	assert.NoError(t, ValidatePrefix("act_Ab3xYz09", PrefixActivity))
	assert.Error(t, ValidatePrefix("sub_Ab3xYz09", PrefixActivity))
	assert.Error(t, ValidatePrefix("act_", PrefixActivity))
	assert.Error(t, ValidatePrefix("act_abc!", PrefixActivity))
	assert.Error(t, ValidatePrefix("", PrefixActivity))
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := MustGenerate(12)
		assert.False(t, seen[id], "duplicate ID generated: %s", id)
		seen[id] = true
	}
}
