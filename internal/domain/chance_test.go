package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeChance(t *testing.T) {
	tests := []struct {
		total    float64
		expected int
	}{
		{0, 30},
		{4.99, 30},
		{5, 31},
		{50, 40},
		{99.99, 49},
		{100, 50},
		{100.01, 50},
		{150, 55},
		{200, 60},
		{300, 70},
		{350, 71},
		{1000, 84},
		{1050, 85},
		{5000, 85},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ComputeChance(tt.total), "total %v", tt.total)
	}
}

func TestComputeChance_MonotonicAndBounded(t *testing.T) {
	prev := ComputeChance(0)
	for total := 0.0; total <= 2000; total += 0.5 {
		chance := ComputeChance(total)
		require.GreaterOrEqual(t, chance, prev, "total %v", total)
		require.GreaterOrEqual(t, chance, ChanceBaseline)
		require.LessOrEqual(t, chance, ChanceCeiling)
		prev = chance
	}
}

func TestParseDepositAmount(t *testing.T) {
	amount, err := ParseDepositAmount(" 150.50 ")
	require.NoError(t, err)
	assert.Equal(t, 150.5, amount)

	amount, err = ParseDepositAmount("99.999")
	require.NoError(t, err)
	assert.Equal(t, 100.0, amount)

	for _, raw := range []string{"", "-5", "0", "0.004", "abc", "NaN", "Inf", "1e400"} {
		_, err := ParseDepositAmount(raw)
		require.Error(t, err, raw)

		appErr, ok := IsAppError(err)
		require.True(t, ok, raw)
		assert.Equal(t, ErrCodeInvalidAmount, appErr.Code, raw)
		assert.Equal(t, 400, appErr.HTTPStatus, raw)
	}
}

func TestValidateDepositAmount(t *testing.T) {
	assert.NoError(t, ValidateDepositAmount(0.01))
	assert.NoError(t, ValidateDepositAmount(0.005))
	assert.Error(t, ValidateDepositAmount(0.004))
	assert.Error(t, ValidateDepositAmount(0))
	assert.Error(t, ValidateDepositAmount(-1))
	assert.Error(t, ValidateDepositAmount(math.NaN()))
	assert.Error(t, ValidateDepositAmount(math.Inf(1)))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 100.0, RoundCents(99.999))
	assert.Equal(t, 0.3, RoundCents(0.1+0.2))
	assert.Equal(t, 12.35, RoundCents(12.346))
	assert.Equal(t, 0.0, RoundCents(0.004))
}
