package greenops

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for unit conversion.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrInvalidUnit indicates an unrecognized mass unit.
	ErrInvalidUnit = constError("invalid mass unit")

	// ErrNegativeValue indicates a negative carbon value.
	// Carbon emissions cannot be negative.
	ErrNegativeValue = constError("negative carbon value")

	// ErrCalculationOverflow indicates a value that is NaN or infinite.
	ErrCalculationOverflow = constError("calculation overflow")
)
