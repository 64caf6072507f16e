package economics

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNotViable indicates that the monthly bill does not exceed the minimum
// utility fee, so the system never pays for itself.
var ErrNotViable = constError("payback not achievable: monthly bill does not exceed the minimum utility fee")
