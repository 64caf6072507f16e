package engine

import "github.com/rshade/solarfocus/internal/economics"

// BarKind tells renderers how to format a bar value.
type BarKind string

// Bar kinds.
const (
	BarPercent  BarKind = "percent"
	BarCurrency BarKind = "currency"
)

// Chart labels.
const (
	ComparisonTitle      = "Consumption and Spending Comparison"
	ComparisonYAxisLabel = "Value (currency / %)"
)

// Bar is one column of a bar chart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Kind  BarKind `json:"kind"`
}

// ComparisonChart is the data behind the consumption and spending chart.
// It carries values only; internal/chart and internal/report draw it.
type ComparisonChart struct {
	Title      string `json:"title"`
	YAxisLabel string `json:"y_axis_label"`
	Bars       []Bar  `json:"bars"`
}

// NewComparisonChart builds the three-bar comparison for a household:
// the share of the bill eliminated, the current grid spend and the spend
// that remains once solar is installed.
func NewComparisonChart(res economics.Result, bill float64) ComparisonChart {
	return ComparisonChart{
		Title:      ComparisonTitle,
		YAxisLabel: ComparisonYAxisLabel,
		Bars: []Bar{
			{Label: "Consumption Reduction", Value: res.EnergyEfficiencyPercent, Kind: BarPercent},
			{Label: "Grid Electricity Spend", Value: bill, Kind: BarCurrency},
			{Label: "Solar Energy Spend", Value: economics.MinimumUtilityFee, Kind: BarCurrency},
		},
	}
}

// MaxValue returns the largest bar value, or 0 for an empty chart.
func (c ComparisonChart) MaxValue() float64 {
	maxV := 0.0
	for _, b := range c.Bars {
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	return maxV
}
