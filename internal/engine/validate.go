package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input ceilings. Every derived figure (cost, lifetime savings, tree count)
// stays finite and within int64 for inputs at or below these values.
const (
	// MaxConsumptionKWh is the largest accepted monthly consumption, in kWh.
	MaxConsumptionKWh = 1e9

	// MaxBill is the largest accepted monthly bill.
	MaxBill = 1e12
)

// ValidateInput rejects consumption or bill values that are zero, negative,
// NaN, infinite or above MaxConsumptionKWh and MaxBill. Every problem found
// is reported in one error wrapping ErrInvalidInput.
func ValidateInput(in Input) error {
	var problems []string
	if msg := checkRange(in.ConsumptionKWh, MaxConsumptionKWh); msg != "" {
		problems = append(problems, "consumption "+msg)
	}
	if msg := checkRange(in.Bill, MaxBill); msg != "" {
		problems = append(problems, "bill "+msg)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return nil
}

func checkRange(v, limit float64) string {
	switch {
	case math.IsNaN(v):
		return "is not a number"
	case math.IsInf(v, 0):
		return "must be finite"
	case v <= 0:
		return "must be greater than zero"
	case v > limit:
		return fmt.Sprintf("must not exceed %g", limit)
	default:
		return ""
	}
}

// ParseInput parses raw consumption and bill strings, converts consumption
// from unit into kWh and validates the result.
func ParseInput(consumption, bill, unit string) (Input, error) {
	u, err := ParseUnit(unit)
	if err != nil {
		return Input{}, err
	}

	c, err := parseNumber("consumption", consumption)
	if err != nil {
		return Input{}, err
	}
	b, err := parseNumber("bill", bill)
	if err != nil {
		return Input{}, err
	}

	in := Input{ConsumptionKWh: u.ToKWh(c), Bill: b}
	if err = ValidateInput(in); err != nil {
		return Input{}, err
	}
	return in, nil
}

func parseNumber(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, name, raw)
	}
	return v, nil
}
