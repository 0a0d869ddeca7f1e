// Package greenops converts a carbon footprint into human-scale equivalences.
//
// It expresses a total in kg CO2e as tree-years of absorption, as a gas
// volume, as the height of a gas column standing on a football pitch, and
// as a share of a reference tower's height. It also owns the locale-aware
// number formatting used wherever these figures are shown.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyTreeYears is the number of trees needed to absorb the
	// footprint within one year.
	EquivalencyTreeYears EquivalencyType = iota

	// EquivalencyColumnHeight is the height of the CO2 column standing on
	// the reference area.
	EquivalencyColumnHeight

	// EquivalencyTowerPercent compares the column with the reference tower.
	EquivalencyTowerPercent
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyTreeYears:
		return "TreeYears"
	case EquivalencyColumnHeight:
		return "ColumnHeight"
	case EquivalencyTowerPercent:
		return "TowerPercent"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// MarshalText encodes the type by name in JSON output.
func (e EquivalencyType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Equivalences holds all comparators derived from one total.
type Equivalences struct {
	// TotalKg is the footprint the comparators were derived from.
	TotalKg float64 `json:"total_kg"`

	// TreeYears is rounded up so that compensation covers the full footprint.
	TreeYears int64 `json:"tree_years"`

	// VolumeCubicMeters is the gas volume at ambient density.
	VolumeCubicMeters float64 `json:"volume_m3"`

	// ColumnHeightMeters is VolumeCubicMeters spread over the reference area.
	ColumnHeightMeters float64 `json:"column_height_m"`

	// TowerHeightPercent is the column height relative to the reference
	// tower, capped at TowerPercentCap.
	TowerHeightPercent float64 `json:"tower_height_percent"`

	// TowerName is the display name of the reference tower.
	TowerName string `json:"tower_name"`

	// Results contains the legend rows in display order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the prose summary for CLI/TUI output.
	DisplayText string `json:"display_text"`
}

// EquivalencyResult represents a single legend row.
type EquivalencyResult struct {
	// Type identifies the equivalency category.
	Type EquivalencyType `json:"type"`

	// Value is the raw calculated value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string with separators and unit.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "Bäume").
	Label string `json:"label"`
}
