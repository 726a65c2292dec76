package cbloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalParams(t *testing.T) {
	tests := []struct {
		items  uint64
		fpRate float64
		wantM  uint64
		wantK  uint32
	}{
		{1000, 0.02, 8127, 6},
		{100, 0.1, 478, 3},
		{10000, 0.01, 95671, 7},
		{1000, 0.5, 1440, 1},
		{1000, 0.25, 2880, 2},
	}

	for _, tt := range tests {
		m, k, err := OptimalParams(tt.items, tt.fpRate)
		require.NoError(t, err)
		require.Equal(t, tt.wantM, m, "items=%d fpRate=%v", tt.items, tt.fpRate)
		require.Equal(t, tt.wantK, k, "items=%d fpRate=%v", tt.items, tt.fpRate)
		t.Logf("items=%d, fpRate=%.4f -> memorySize=%d, k=%d", tt.items, tt.fpRate, m, k)
	}
}

func TestOptimalParamsDefaultsFPRate(t *testing.T) {
	for _, fpRate := range []float64{0, -0.5, math.Inf(-1)} {
		m, k, err := OptimalParams(1000, fpRate)
		require.NoError(t, err)
		require.Equal(t, uint64(8127), m)
		require.Equal(t, uint32(6), k)
	}
}

func TestOptimalParamsErrors(t *testing.T) {
	_, _, err := OptimalParams(0, 0.02)
	require.ErrorIs(t, err, ErrInvalidNumItems)

	_, _, err = OptimalParams(1000, 1.5)
	require.ErrorIs(t, err, ErrInvalidFPRate)

	_, _, err = OptimalParams(1000, math.NaN())
	require.ErrorIs(t, err, ErrInvalidFPRate)

	// log2(1) == 0 sizes the array to nothing.
	_, _, err = OptimalParams(1000, 1)
	require.ErrorIs(t, err, ErrZeroMemory)

	_, _, err = OptimalParams(MaxMemorySize, 0.0001)
	require.ErrorIs(t, err, ErrSizeOverflow)
}

func TestOptimalKFloorsAtOne(t *testing.T) {
	require.Equal(t, uint32(1), OptimalK(0.9))
	require.Equal(t, uint32(1), OptimalK(1))
	require.Equal(t, uint32(3), OptimalK(0.125))
	require.Equal(t, uint32(10), OptimalK(0.001))
}

func TestParamsSizing(t *testing.T) {
	s, err := Params{NumItems: 1000, FPRate: 0.02, NumHashFunctions: 3}.Sizing()
	require.NoError(t, err)
	require.Equal(t, Sizing{MemorySize: 8127, K: 3, FPRate: 0.02}, s)

	// An explicit k is not checked against the rate.
	s, err = Params{NumItems: 10, FPRate: 0.5, NumHashFunctions: 40}.Sizing()
	require.NoError(t, err)
	require.Equal(t, uint32(40), s.K)

	s, err = Params{NumItems: 1000}.Sizing()
	require.NoError(t, err)
	require.Equal(t, DefaultFPRate, s.FPRate)
	require.Equal(t, uint32(6), s.K)
}

func TestEstimateFalsePositiveRate(t *testing.T) {
	memorySize := uint64(478)
	k := uint32(3)
	items := uint64(100)

	estimated := EstimateFalsePositiveRate(memorySize, k, items)

	// Manual calculation: (1 - e^(-kn/m))^k
	expected := math.Pow(1-math.Exp(-3.0*100/478), 3)
	require.InDelta(t, expected, estimated, 1e-12)
	require.InDelta(t, 0.1013, estimated, 0.0001)
}

func TestEstimateFalsePositiveRateEdgeCases(t *testing.T) {
	require.Zero(t, EstimateFalsePositiveRate(0, 3, 100))
	require.Zero(t, EstimateFalsePositiveRate(478, 3, 0))
}
