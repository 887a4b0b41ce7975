package compute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	testCases := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "single_value_identity",
			values:   []float64{42.5},
			expected: 42.5,
		},
		{
			name:     "integers",
			values:   []float64{1, 2, 3},
			expected: 2,
		},
		{
			name:     "fractions",
			values:   []float64{1.5, 2.5},
			expected: 2,
		},
		{
			name:     "two_integers",
			values:   []float64{4, 6},
			expected: 5,
		},
		{
			name:     "negative_values",
			values:   []float64{-3, -6, -9},
			expected: -6,
		},
		{
			name:     "mixed_signs_cancel",
			values:   []float64{-1.5, 1.5},
			expected: 0,
		},
		{
			name:     "zeros",
			values:   []float64{0, 0, 0, 0},
			expected: 0,
		},
		{
			name:     "large_magnitudes",
			values:   []float64{1e12, 3e12},
			expected: 2e12,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mean, err := Mean(tc.values)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, mean, 1e-9)
		})
	}
}

func TestMeanIdentity(t *testing.T) {
	for _, v := range []float64{0, -0.25, 1, 3.14159, -1e6, 7e-12} {
		mean, err := Mean([]float64{v})
		require.NoError(t, err)
		assert.Equal(t, v, mean)
	}
}

func TestMeanEmpty(t *testing.T) {
	_, err := Mean(nil)
	require.ErrorIs(t, err, ErrNoNumbers)

	_, err = Mean([]float64{})
	require.ErrorIs(t, err, ErrNoNumbers)
}

func TestMeanMatchesSumOverCount(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	mean, err := Mean(values)
	require.NoError(t, err)
	assert.InDelta(t, Sum(values)/float64(len(values)), mean, 0)
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 10.0, Sum([]float64{4, 6}))
	assert.InDelta(t, 0.6, Sum([]float64{0.1, 0.2, 0.3}), 1e-9)
	assert.True(t, math.IsInf(Sum([]float64{math.MaxFloat64, math.MaxFloat64}), 1))
}
