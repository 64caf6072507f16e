// Package economics sizes a residential solar installation and projects its
// cost, savings and payback period from a household's monthly consumption
// and electricity bill.
//
// All values are computed at full precision. Rounding is left to the
// presentation layer.
package economics

import "fmt"

// PaybackStatus reports whether the installation ever pays for itself.
type PaybackStatus int

const (
	// PaybackAchievable means monthly net savings are positive and
	// PaybackMonths holds a finite, positive value.
	PaybackAchievable PaybackStatus = iota

	// PaybackNotViable means the bill does not exceed the minimum utility fee.
	// PaybackMonths is zero and must not be displayed as a number.
	PaybackNotViable
)

// String returns a stable identifier for the status.
func (s PaybackStatus) String() string {
	switch s {
	case PaybackAchievable:
		return "achievable"
	case PaybackNotViable:
		return "not_viable"
	default:
		return fmt.Sprintf("PaybackStatus(%d)", s)
	}
}

// MarshalText implements encoding.TextMarshaler so JSON output carries the
// readable identifier instead of the integer.
func (s PaybackStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PaybackStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "achievable":
		*s = PaybackAchievable
	case "not_viable":
		*s = PaybackNotViable
	default:
		return fmt.Errorf("unknown payback status %q", text)
	}
	return nil
}

// Result holds the derived economics for one household.
type Result struct {
	// SystemPowerKW is the installed capacity required, in kW.
	SystemPowerKW float64 `json:"system_power_kw"`

	// SystemCost is the capital cost of the installation.
	SystemCost float64 `json:"system_cost"`

	// MonthlyNetSavings is the bill minus the retained minimum utility fee.
	MonthlyNetSavings float64 `json:"monthly_net_savings"`

	// AnnualNetSavings is MonthlyNetSavings over twelve months.
	AnnualNetSavings float64 `json:"annual_net_savings"`

	// NetSavingsOver25Years is AnnualNetSavings over the system lifetime.
	NetSavingsOver25Years float64 `json:"net_savings_over_25_years"`

	// PaybackMonths is SystemCost / MonthlyNetSavings. Zero when PaybackStatus
	// is PaybackNotViable.
	PaybackMonths float64 `json:"payback_months"`

	// PaybackStatus distinguishes a real payback period from a degenerate one.
	PaybackStatus PaybackStatus `json:"payback_status"`

	// EnergyEfficiencyPercent is the share of the bill eliminated by solar.
	EnergyEfficiencyPercent float64 `json:"energy_efficiency_percent"`
}

// Viable reports whether the payback period is finite and positive.
func (r Result) Viable() bool {
	return r.PaybackStatus == PaybackAchievable
}

// PaybackYears converts the unrounded payback period into years.
// Returns zero when the payback is not viable.
func (r Result) PaybackYears() float64 {
	if !r.Viable() {
		return 0
	}
	return r.PaybackMonths / MonthsPerYear
}

// Err returns ErrNotViable for a degenerate result and nil otherwise.
func (r Result) Err() error {
	if !r.Viable() {
		return ErrNotViable
	}
	return nil
}

// Compute derives system sizing, cost and payback for a household.
//
// consumptionKWh is the monthly energy use and bill the monthly electricity
// cost. Inputs are expected to be positive and finite; validation belongs to
// the caller. When bill <= MinimumUtilityFee the result carries
// PaybackNotViable instead of a negative or infinite payback.
func Compute(consumptionKWh, bill float64) Result {
	adjusted := consumptionKWh * (1 + EfficiencyLossFactor)
	powerKW := adjusted / DaysPerMonth / DailyPeakSunHours
	cost := powerKW * CostPerKWInstalled

	monthly := bill - MinimumUtilityFee
	annual := monthly * MonthsPerYear
	lifetime := annual * SystemLifetimeYears

	res := Result{
		SystemPowerKW:           powerKW,
		SystemCost:              cost,
		MonthlyNetSavings:       monthly,
		AnnualNetSavings:        annual,
		NetSavingsOver25Years:   lifetime,
		PaybackStatus:           PaybackNotViable,
		EnergyEfficiencyPercent: (bill - MinimumUtilityFee) / bill * percent,
	}

	if monthly > 0 {
		res.PaybackMonths = cost / monthly
		res.PaybackStatus = PaybackAchievable
	}

	return res
}

// LifetimeEnergyOffsetKWh is the energy supplied by the system over its
// lifetime, assuming it covers the household's current consumption.
func LifetimeEnergyOffsetKWh(consumptionKWh float64) float64 {
	return consumptionKWh * MonthsPerYear * SystemLifetimeYears
}
