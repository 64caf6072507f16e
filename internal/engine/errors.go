package engine

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Input validation errors.
const (
	// ErrInvalidInput indicates a consumption or bill value that is
	// non-numeric, zero, negative, NaN or infinite.
	ErrInvalidInput = constError("invalid input")

	// ErrUnknownUnit indicates an energy unit other than Wh, kWh or MWh.
	ErrUnknownUnit = constError("unknown energy unit")
)
