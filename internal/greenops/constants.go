package greenops

// Presentation limits for equivalences.
const (
	// TowerPercentCap is the largest tower-height percentage ever displayed.
	// The underlying column height is never clamped.
	TowerPercentCap = 999.0

	// maxTreeYears bounds the tree count so that it always fits an int64.
	maxTreeYears = 1 << 62

	// noisePrecision is the scale below which a tree-count quotient is
	// treated as floating-point error before rounding up.
	noisePrecision = 1e9
)

// Unit Conversion Constants for expressing kilograms in other mass units.
const (
	// KgPerGram converts grams to kilograms.
	KgPerGram = 0.001

	// KgPerKg is the identity conversion for kilograms.
	KgPerKg = 1.0

	// KgPerTonne converts metric tonnes to kilograms.
	KgPerTonne = 1000.0

	// KgPerPound converts pounds to kilograms.
	KgPerPound = 0.453592
)

// Display Threshold Constants control abbreviated number output.
const (
	// LargeNumberThreshold is the threshold for using abbreviated display.
	// Values at or above this threshold use "~X,X Mio." format.
	LargeNumberThreshold = 1_000_000

	// BillionThreshold is the threshold for billion-scale display.
	BillionThreshold = 1_000_000_000
)

// Display precision used on screen and in the report.
const (
	// MassPrecision is the number of decimals for kg values.
	MassPrecision = 0
	// TonnePrecision is the number of decimals for tonne values.
	TonnePrecision = 2
	// HeightPrecision is the number of decimals for heights in metres.
	HeightPrecision = 2
	// VolumePrecision is the number of decimals for volumes in cubic metres.
	VolumePrecision = 1
	// PercentPrecision is the number of decimals for percentages.
	PercentPrecision = 1
)
