package greenops

import (
	"fmt"
	"math"
)

// Equivalencies expresses an avoided emission in kg CO2e as miles driven,
// smartphones charged and days of home electricity.
//
// Values below MinEquivalencyThresholdKg yield an empty output without error.
// Negative values return ErrNegativeValue; NaN or infinite values and
// overflowing divisions return ErrCalculationOverflow.
func Equivalencies(kg float64) (EquivalencyOutput, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	homeDays := kg / EPAHomeDayFactor

	if math.IsInf(phones, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}

	results := []EquivalencyResult{
		newEquivalency(EquivalencyMilesDriven, miles, "miles driven"),
		newEquivalency(EquivalencySmartphonesCharged, phones, "smartphones charged"),
		newEquivalency(EquivalencyHomeDays, homeDays, "days of home electricity"),
	}

	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			results[0].FormattedValue, results[1].FormattedValue),
		CompactText: fmt.Sprintf("(≈ %s mi, %s phones)",
			results[0].FormattedValue, results[1].FormattedValue),
	}, nil
}

// ImpactEquivalencies is Equivalencies applied to an impact's annual avoided
// emission. Calculation failures collapse to an empty output.
func ImpactEquivalencies(impact ImpactResult) EquivalencyOutput {
	out, err := Equivalencies(impact.AnnualCO2AvoidedKg)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}
	}
	return out
}

func newEquivalency(t EquivalencyType, v float64, label string) EquivalencyResult {
	return EquivalencyResult{
		Type:           t,
		Value:          v,
		FormattedValue: formatEquivalencyValue(v),
		Label:          label,
	}
}

// formatEquivalencyValue uses million/billion scaling for large values and a
// comma-separated integer otherwise.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
