package greenops

import (
	"math"
	"strings"
)

// getUnitFactor returns the number of kilograms in one unit.
// Matching is case-insensitive; the "CO2e" suffix is optional.
func getUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "g", "gco2e":
		return KgPerGram, true
	case "kg", "kgco2e":
		return KgPerKg, true
	case "t", "tco2e":
		return KgPerTonne, true
	case "lb", "lbco2e":
		return KgPerPound, true
	default:
		return 0, false
	}
}

// ConvertKg expresses a mass in kilograms in the given unit.
//
// Returns ErrNegativeValue if kg is negative, ErrInvalidUnit if the unit is
// not recognized and ErrCalculationOverflow for NaN or infinite input.
func ConvertKg(kg float64, unit string) (float64, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return 0, ErrCalculationOverflow
	}

	if kg < 0 {
		return 0, ErrNegativeValue
	}

	factor, ok := getUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	return kg / factor, nil
}

// IsRecognizedUnit reports whether unit is a supported mass unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := getUnitFactor(unit)
	return ok
}
