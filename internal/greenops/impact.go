package greenops

import "math"

// ComputeImpact derives the annual avoided CO2 and tree equivalents for a
// household whose monthly consumption is covered by solar.
//
// consumptionKWh must be positive and finite; validation belongs to the
// caller. The result is a pure function of the input.
func ComputeImpact(consumptionKWh float64) ImpactResult {
	annualKg := consumptionKWh * monthsPerYear * GridCO2PerKWh

	return ImpactResult{
		AnnualCO2AvoidedKg: annualKg,
		CO2AvoidedTonnes:   annualKg / KgPerTonne,
		TreesEquivalent:    treesFor(annualKg),
		Horizon:            HorizonAnnual,
	}
}

// treesFor converts an annual avoided emission into a tree count, rounding up
// so that any positive emission counts at least one tree. Counts beyond
// int64 saturate at math.MaxInt64.
func treesFor(annualKg float64) int64 {
	if math.IsNaN(annualKg) || annualKg <= 0 {
		return 0
	}
	v := math.Ceil(annualKg * CobenefitMultiplier / CO2PerTreeYearKg)
	if v >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(v)
}
