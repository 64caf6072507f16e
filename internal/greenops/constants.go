package greenops

// Emission and absorption factors for avoided-emissions reporting.
const (
	// GridCO2PerKWh is the national grid emission factor in kg CO2 per kWh.
	// Every kWh supplied by solar displaces one grid kWh.
	GridCO2PerKWh = 0.475

	// CO2PerTreeYearKg is the CO2 absorbed by one tree in one year, in kg.
	CO2PerTreeYearKg = 22.0

	// CobenefitMultiplier scales raw avoided CO2 to account for ancillary
	// environmental benefit when converting to tree equivalents.
	CobenefitMultiplier = 1.2
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each factor is the kg CO2e attributed to one unit of the activity:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for average passenger vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPAHomeDayFactor is kg CO2e per day of average US home electricity.
	EPAHomeDayFactor = 18.3
)

// Unit conversion constants.
const (
	// KgPerTonne converts kilograms to metric tonnes.
	KgPerTonne = 1000.0

	monthsPerYear = 12.0
)

// Display thresholds.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing equivalencies.
	// Below it the equivalencies round to nothing meaningful.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold switches display to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches display to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
