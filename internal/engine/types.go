// Package engine validates household inputs at the boundary and combines the
// economics and greenops calculators into a single Estimate for rendering.
package engine

import (
	"github.com/rshade/solarfocus/internal/economics"
	"github.com/rshade/solarfocus/internal/greenops"
)

// Input is one household's monthly figures, already normalized to kWh.
type Input struct {
	// Label identifies the household in batch output. Optional.
	Label string `json:"label,omitempty" yaml:"label"`

	// ConsumptionKWh is the monthly electricity consumption.
	ConsumptionKWh float64 `json:"monthly_consumption_kwh" yaml:"consumption_kwh"`

	// Bill is the monthly electricity bill in the display currency.
	Bill float64 `json:"monthly_bill" yaml:"bill"`
}

// Estimate is the full result for one household.
type Estimate struct {
	Input Input `json:"input"`

	Economics economics.Result `json:"economics"`

	// PaybackYears is derived from the unrounded PaybackMonths. Zero when
	// the payback is not viable.
	PaybackYears float64 `json:"payback_years"`

	Environmental greenops.ImpactResult `json:"environmental"`

	Equivalencies greenops.EquivalencyOutput `json:"equivalencies"`

	// LifetimeEnergyOffsetKWh is the consumption covered over the system
	// lifetime.
	LifetimeEnergyOffsetKWh float64 `json:"lifetime_energy_offset_kwh"`

	Chart ComparisonChart `json:"chart"`

	// Cached is true when the estimate was served from the cache.
	Cached bool `json:"-"`
}

// Viable reports whether the installation pays for itself.
func (e *Estimate) Viable() bool {
	return e.Economics.Viable()
}
