package economics

// Policy parameters for residential solar sizing and payback.
//
// These are fixed for every calculation; callers cannot override them.
const (
	// MinimumUtilityFee is the grid connection charge still paid each month
	// after the household switches to solar.
	MinimumUtilityFee = 30.0

	// EfficiencyLossFactor is the inverter/panel derating applied to raw
	// consumption before sizing the system.
	EfficiencyLossFactor = 0.20

	// CostPerKWInstalled is the capital cost of one kW of installed capacity.
	CostPerKWInstalled = 4000.0

	// SystemLifetimeYears is the assumed useful life of the installation.
	SystemLifetimeYears = 25

	// DailyPeakSunHours is the number of equivalent full-sun hours per day.
	DailyPeakSunHours = 4.0
)

// Calendar conversion constants.
const (
	// DaysPerMonth converts a monthly energy figure into a daily one.
	DaysPerMonth = 30.0

	// MonthsPerYear converts monthly figures into annual ones.
	MonthsPerYear = 12.0

	percent = 100.0
)
