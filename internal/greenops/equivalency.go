package greenops

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/rshade/footprint/internal/factors"
)

// percentMultiplier converts a ratio to a percentage.
const percentMultiplier = 100

// Calculate derives all equivalences from totalKg using the compensation
// constants of the factor table.
//
//	treeYears    = ceil(total / treeKgPerYear)
//	volume       = total / co2Density
//	columnHeight = volume / referenceArea
//	towerPercent = min(columnHeight / towerHeight * 100, TowerPercentCap)
//
// Negative, NaN and infinite totals are treated as zero. Calculate never fails.
func Calculate(totalKg float64, comp factors.Compensation) Equivalences {
	if math.IsNaN(totalKg) || math.IsInf(totalKg, 0) || totalKg < 0 {
		log.Debug().Float64("total_kg", totalKg).Msg("non-finite or negative total, using 0 for equivalences")
		totalKg = 0
	}

	volume := totalKg / comp.CO2DensityKgM3
	height := volume / comp.ReferenceAreaM2

	eq := Equivalences{
		TotalKg:            totalKg,
		TreeYears:          TreeYears(totalKg, comp.TreeKgPerYear),
		VolumeCubicMeters:  volume,
		ColumnHeightMeters: height,
		TowerHeightPercent: TowerPercent(height, comp.ReferenceTowerM),
		TowerName:          comp.ReferenceTowerName,
	}

	eq.Results = []EquivalencyResult{
		{
			Type:           EquivalencyTreeYears,
			Value:          float64(eq.TreeYears),
			FormattedValue: FormatNumber(eq.TreeYears),
			Label:          "Bäume",
		},
		{
			Type:           EquivalencyColumnHeight,
			Value:          eq.ColumnHeightMeters,
			FormattedValue: FormatFloat(eq.ColumnHeightMeters, HeightPrecision) + " m",
			Label:          "hohe Säule",
		},
		{
			Type:           EquivalencyTowerPercent,
			Value:          eq.TowerHeightPercent,
			FormattedValue: FormatFloat(eq.TowerHeightPercent, PercentPrecision) + " %",
			Label:          "der Höhe: " + comp.ReferenceTowerName,
		},
	}

	eq.DisplayText = fmt.Sprintf(
		"Entspricht der Jahresaufnahme von %s Bäumen oder einer %s m hohen Säule auf einem Fußballfeld",
		formatEquivalencyValue(float64(eq.TreeYears)), FormatFloat(height, HeightPrecision))

	return eq
}

// TreeYears returns the number of trees needed to absorb totalKg within one
// year. Any remainder rounds up.
func TreeYears(totalKg, treeKgPerYear float64) int64 {
	if totalKg <= 0 || treeKgPerYear <= 0 {
		return 0
	}
	trees := math.Ceil(roundNoise(totalKg / treeKgPerYear))
	if math.IsNaN(trees) || trees >= maxTreeYears {
		return maxTreeYears
	}
	return int64(trees)
}

// roundNoise drops floating-point error below noisePrecision decimals, so
// that 10000 km × 0.170 kg/km counts as exactly 1700 kg.
func roundNoise(q float64) float64 {
	scaled := q * noisePrecision
	if math.IsInf(scaled, 0) {
		return q
	}
	return math.Round(scaled) / noisePrecision
}

// TowerPercent expresses heightM as a percentage of towerM, capped at
// TowerPercentCap.
func TowerPercent(heightM, towerM float64) float64 {
	if towerM <= 0 {
		return 0
	}
	return math.Min((heightM/towerM)*percentMultiplier, TowerPercentCap)
}

// formatEquivalencyValue formats an equivalency value for display.
// Values at or above LargeNumberThreshold use abbreviated notation,
// everything else is a rounded integer with thousand separators.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
