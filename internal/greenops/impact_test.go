package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeImpact(t *testing.T) {
	tests := []struct {
		name        string
		consumption float64
		wantKg      float64
		wantTonnes  float64
		wantTrees   int64
	}{
		{
			name:        "500 kWh",
			consumption: 500,
			wantKg:      2850, // 500 * 12 * 0.475
			wantTonnes:  2.85,
			wantTrees:   156, // ceil(2850 * 1.2 / 22) = ceil(155.45)
		},
		{
			name:        "300 kWh",
			consumption: 300,
			wantKg:      1710,
			wantTonnes:  1.71,
			wantTrees:   94, // ceil(93.27)
		},
		{
			name:        "tiny consumption still counts one tree",
			consumption: 0.01,
			wantKg:      0.057,
			wantTonnes:  0.000057,
			wantTrees:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeImpact(tt.consumption)

			assert.InDelta(t, tt.wantKg, got.AnnualCO2AvoidedKg, 1e-9)
			assert.InDelta(t, tt.wantTonnes, got.CO2AvoidedTonnes, 1e-12)
			assert.Equal(t, tt.wantTrees, got.TreesEquivalent)
			assert.Equal(t, HorizonAnnual, got.Horizon)
		})
	}
}

func TestComputeImpact_TreesMonotonic(t *testing.T) {
	prev := int64(0)
	for c := 1.0; c <= 5000; c += 7.3 {
		got := ComputeImpact(c).TreesEquivalent
		assert.GreaterOrEqual(t, got, prev, "consumption=%v", c)
		assert.GreaterOrEqual(t, got, int64(0))
		prev = got
	}
}

func TestComputeImpact_Idempotent(t *testing.T) {
	assert.Equal(t, ComputeImpact(412.7), ComputeImpact(412.7))
}

func TestComputeImpact_TreesSaturate(t *testing.T) {
	prev := int64(0)
	for _, c := range []float64{1e15, 1e17, 1e20, 1e300, math.MaxFloat64, math.Inf(1)} {
		got := ComputeImpact(c).TreesEquivalent
		assert.GreaterOrEqual(t, got, prev, "consumption=%v", c)
		prev = got
	}
	assert.Equal(t, int64(math.MaxInt64), prev)
}

func TestTreesFor_Degenerate(t *testing.T) {
	assert.Zero(t, treesFor(0))
	assert.Zero(t, treesFor(-5))
	assert.Zero(t, treesFor(math.NaN()))
	assert.Equal(t, int64(math.MaxInt64), treesFor(math.Inf(1)))
}
