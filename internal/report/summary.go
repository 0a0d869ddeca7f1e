package report

import (
	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/greenops"
)

// Summary is the set of figures mirrored into on-screen fields before a
// report is generated.
type Summary struct {
	Scope1Kg           float64 `json:"scope1_kg"`
	Scope2Kg           float64 `json:"scope2_kg"`
	Scope3Kg           float64 `json:"scope3_kg"`
	TotalKg            float64 `json:"total_kg"`
	TreeYears          int64   `json:"tree_years"`
	VolumeCubicMeters  float64 `json:"volume_m3"`
	ColumnHeightMeters float64 `json:"column_height_m"`
	TowerHeightPercent float64 `json:"tower_height_percent"`

	// Equivalences are the legend rows, DisplayText their prose form.
	Equivalences []greenops.EquivalencyResult `json:"equivalences,omitempty"`
	DisplayText  string                       `json:"display_text,omitempty"`
}

// NewSummary builds a Summary from calculation results.
func NewSummary(result emissions.Result, eq greenops.Equivalences) Summary {
	return Summary{
		Scope1Kg:           result.Scope1,
		Scope2Kg:           result.Scope2,
		Scope3Kg:           result.Scope3,
		TotalKg:            result.Total,
		TreeYears:          eq.TreeYears,
		VolumeCubicMeters:  eq.VolumeCubicMeters,
		ColumnHeightMeters: eq.ColumnHeightMeters,
		TowerHeightPercent: eq.TowerHeightPercent,
		Equivalences:       eq.Results,
		DisplayText:        eq.DisplayText,
	}
}

// Summary returns the on-screen figures of r.
func (r *Report) Summary() Summary {
	return NewSummary(r.Emissions, r.Equivalences)
}

// Field is one labelled, formatted on-screen value.
type Field struct {
	Label string
	Value string
}

// Fields returns the summary as display-ready label/value pairs in the
// order the preview shows them.
func (s Summary) Fields() []Field {
	return []Field{
		{Label: "Scope 1", Value: greenops.FormatKg(s.Scope1Kg)},
		{Label: "Scope 2", Value: greenops.FormatKg(s.Scope2Kg)},
		{Label: "Scope 3", Value: greenops.FormatKg(s.Scope3Kg)},
		{Label: "Gesamt", Value: greenops.FormatKg(s.TotalKg)},
		{Label: "Bäume (1 Jahr)", Value: greenops.FormatNumber(s.TreeYears)},
		{Label: "Volumen", Value: greenops.FormatFloat(s.VolumeCubicMeters, greenops.VolumePrecision) + " m³"},
		{Label: "Säulenhöhe", Value: greenops.FormatFloat(s.ColumnHeightMeters, greenops.HeightPrecision) + " m"},
		{Label: "Turmhöhe", Value: greenops.FormatFloat(s.TowerHeightPercent, greenops.PercentPrecision) + " %"},
	}
}
