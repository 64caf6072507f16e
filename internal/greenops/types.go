// Package greenops estimates the environmental impact of replacing grid
// electricity with solar generation.
//
// It converts a household's monthly consumption into avoided CO2 emissions
// and tree equivalents, and expresses avoided emissions as relatable
// equivalencies like "miles driven" using EPA-published factors.
package greenops

import "fmt"

// Horizon names the time span an avoided-emissions figure covers.
type Horizon string

// HorizonAnnual is the only horizon reported: one year of operation.
// Tree equivalents are an annual absorption rate, so avoided CO2 is reported
// on the same horizon.
const HorizonAnnual Horizon = "annual"

// ImpactResult is the environmental impact of covering a household's
// consumption with solar for one year.
type ImpactResult struct {
	// AnnualCO2AvoidedKg is the avoided grid emission in kg CO2 per year.
	AnnualCO2AvoidedKg float64 `json:"annual_co2_avoided_kg"`

	// CO2AvoidedTonnes is AnnualCO2AvoidedKg expressed in metric tonnes.
	CO2AvoidedTonnes float64 `json:"co2_avoided_tonnes"`

	// TreesEquivalent is the number of trees whose annual absorption matches
	// the avoided emission (with co-benefit), rounded up.
	TreesEquivalent int64 `json:"trees_equivalent"`

	// Horizon is the time span of CO2AvoidedTonnes.
	Horizon Horizon `json:"horizon"`
}

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the avoided emission the equivalencies were derived from.
	InputKg float64 `json:"input_kg"`

	// Results contains calculated equivalencies in priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose form, e.g.
	// "Equivalent to driving ~14,844 miles or charging ~346,715 smartphones".
	DisplayText string `json:"display_text"`

	// CompactText is the abbreviated form, e.g. "(≈ 14,844 mi, 346,715 phones)".
	CompactText string `json:"compact_text"`

	// IsEmpty is true if no equivalencies were calculated.
	IsEmpty bool `json:"is_empty"`
}
