package render

import "github.com/rshade/solarfocus/internal/engine"

// Line is one labelled value.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section is a titled group of lines.
type Section struct {
	Heading string `json:"heading"`
	Lines   []Line `json:"lines"`
}

// Sections lays out an estimate as display-ready groups shared by the text
// table, the web page, the TUI and the reports.
func Sections(f *Formatter, e *engine.Estimate) []Section {
	econ := e.Economics
	env := e.Environmental

	return []Section{
		{Heading: "Household", Lines: []Line{
			{"Monthly consumption", f.Number(e.Input.ConsumptionKWh, 2) + " kWh"},
			{"Monthly bill", f.Money(e.Input.Bill)},
		}},
		{Heading: "Economics", Lines: []Line{
			{"System power", f.Number(econ.SystemPowerKW, 2) + " kW"},
			{"System cost", f.Money(econ.SystemCost)},
			{"Monthly net savings", f.Money(econ.MonthlyNetSavings)},
			{"Annual net savings", f.Money(econ.AnnualNetSavings)},
			{"Net savings (25 years)", f.Money(econ.NetSavingsOver25Years)},
			{"Payback", f.Payback(e)},
			{"Energy efficiency", f.Percent(econ.EnergyEfficiencyPercent)},
		}},
		{Heading: "Environment (" + string(env.Horizon) + ")", Lines: []Line{
			{"CO2 avoided", f.Tonnes(env.CO2AvoidedTonnes) + " (" + f.Number(env.AnnualCO2AvoidedKg, 0) + " kg)"},
			{"Trees equivalent", f.Number(float64(env.TreesEquivalent), 0)},
			{"Lifetime energy offset", f.Number(e.LifetimeEnergyOffsetKWh, 0) + " kWh"},
		}},
	}
}
