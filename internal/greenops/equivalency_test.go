package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalencies(t *testing.T) {
	tests := []struct {
		name        string
		kg          float64
		wantMiles   float64
		wantPhones  float64
		wantDays    float64
		wantIsEmpty bool
		wantErr     error
	}{
		{
			name:       "300 kWh household",
			kg:         1710, // 300 * 12 * 0.475
			wantMiles:  8906.25,
			wantPhones: 208029.20,
			wantDays:   93.44,
		},
		{
			name:       "500 kWh household",
			kg:         2850,
			wantMiles:  14843.75,
			wantPhones: 346715.33,
			wantDays:   155.74,
		},
		{
			name:       "exactly at threshold",
			kg:         1.0,
			wantMiles:  5.208333,
			wantPhones: 121.65,
			wantDays:   0.0546,
		},
		{name: "below threshold", kg: 0.5, wantIsEmpty: true},
		{name: "zero", kg: 0, wantIsEmpty: true},
		{name: "negative", kg: -10, wantIsEmpty: true, wantErr: ErrNegativeValue},
		{name: "NaN", kg: math.NaN(), wantIsEmpty: true, wantErr: ErrCalculationOverflow},
		{name: "infinite", kg: math.Inf(1), wantIsEmpty: true, wantErr: ErrCalculationOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Equivalencies(tt.kg)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				assert.Empty(t, got.Results)
				return
			}

			require.Len(t, got.Results, 3)
			assert.Equal(t, EquivalencyMilesDriven, got.Results[0].Type)
			assert.InDelta(t, tt.wantMiles, got.Results[0].Value, tt.wantMiles*0.01)
			assert.Equal(t, EquivalencySmartphonesCharged, got.Results[1].Type)
			assert.InDelta(t, tt.wantPhones, got.Results[1].Value, tt.wantPhones*0.01)
			assert.Equal(t, EquivalencyHomeDays, got.Results[2].Type)
			assert.InDelta(t, tt.wantDays, got.Results[2].Value, tt.wantDays*0.01)
		})
	}
}

func TestEquivalencies_DisplayText(t *testing.T) {
	got, err := Equivalencies(2850)
	require.NoError(t, err)

	assert.Equal(t, "Equivalent to driving ~14,844 miles or charging ~346,715 smartphones", got.DisplayText)
	assert.Equal(t, "(≈ 14,844 mi, 346,715 phones)", got.CompactText)
}

func TestEquivalencies_LargeValuesScaled(t *testing.T) {
	got, err := Equivalencies(10_000_000)
	require.NoError(t, err)
	assert.Contains(t, got.DisplayText, "million")
	assert.Contains(t, got.DisplayText, "billion")
}

func TestImpactEquivalencies(t *testing.T) {
	out := ImpactEquivalencies(ComputeImpact(500))
	assert.False(t, out.IsEmpty)
	assert.InDelta(t, 2850.0, out.InputKg, 1e-9)

	empty := ImpactEquivalencies(ImpactResult{AnnualCO2AvoidedKg: math.NaN()})
	assert.True(t, empty.IsEmpty)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "SmartphonesCharged", EquivalencySmartphonesCharged.String())
	assert.Equal(t, "HomeDays", EquivalencyHomeDays.String())
	assert.Equal(t, "EquivalencyType(42)", EquivalencyType(42).String())
}
