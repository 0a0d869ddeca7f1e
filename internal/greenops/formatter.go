package greenops

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses German locale for "." thousand separators and "," decimals.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.German)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18.248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision, thousand
// separators and a decimal comma. Halves round away from zero.
// Example: FormatFloat(1234.567, 2) returns "1.234,57".
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	precision = max(precision, 0)

	const base = 10
	multiplier := math.Pow(base, float64(precision))
	if scaled := f * multiplier; !math.IsInf(scaled, 0) {
		f = math.Round(scaled) / multiplier
	}
	if f == 0 {
		// Drops the sign of negative zero.
		f = 0
	}

	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), f)
}

// FormatKg formats a mass in kilograms for display ("1.700 kg").
func FormatKg(kg float64) string {
	return FormatFloat(kg, MassPrecision) + " kg"
}

// FormatTonnes formats a mass given in kilograms as tonnes ("1,70 t").
func FormatTonnes(kg float64) string {
	return FormatFloat(kg/KgPerTonne, TonnePrecision) + " t"
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold (1 million) use separator format.
// Values at or above LargeNumberThreshold use "~X,X Mio." format.
// Values at or above BillionThreshold use "~X,X Mrd." format.
//
// Example: FormatLarge(1500000000) returns "~1,5 Mrd.".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return "~" + FormatFloat(n/BillionThreshold, 1) + " Mrd."
	}

	if n >= LargeNumberThreshold {
		return "~" + FormatFloat(n/LargeNumberThreshold, 1) + " Mio."
	}

	return FormatNumber(int64(math.Round(n)))
}
