package engine

import (
	"fmt"
	"strings"
)

// EnergyUnit is the unit a consumption figure is expressed in.
type EnergyUnit string

// Supported energy units.
const (
	UnitWh  EnergyUnit = "Wh"
	UnitKWh EnergyUnit = "kWh"
	UnitMWh EnergyUnit = "MWh"
)

const whPerKWh = 1000.0

// ParseUnit parses a unit name case-insensitively. An empty string means kWh.
func ParseUnit(s string) (EnergyUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kwh":
		return UnitKWh, nil
	case "wh":
		return UnitWh, nil
	case "mwh":
		return UnitMWh, nil
	default:
		return "", fmt.Errorf("%w: %q (want Wh, kWh or MWh)", ErrUnknownUnit, s)
	}
}

// ToKWh converts v from unit u into kilowatt-hours.
func (u EnergyUnit) ToKWh(v float64) float64 {
	switch u {
	case UnitWh:
		return v / whPerKWh
	case UnitMWh:
		return v * whPerKWh
	default:
		return v
	}
}
