package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned while building a factor table.
// Compare with errors.Is().
var (
	// ErrInvalidFactor indicates a negative, NaN or infinite coefficient.
	ErrInvalidFactor = constError("invalid emission factor")

	// ErrMissingFactor indicates a required coefficient is absent from the table.
	ErrMissingFactor = constError("missing emission factor")

	// ErrUnsupportedVersion indicates the table version is outside the supported range.
	ErrUnsupportedVersion = constError("unsupported factor table version")
)
