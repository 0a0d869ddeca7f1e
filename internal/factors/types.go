// Package factors holds the immutable emission-factor table used by the
// aggregator and the equivalence calculator.
//
// Coefficients are kg CO2e per unit of activity (km, kWh, GB, sheet). A Table
// is built once, validated, and only ever read afterwards; there is no
// process-wide instance, callers pass the table they loaded.
package factors

// Scope identifies a GHG Protocol scope section of the table.
type Scope string

// Scopes as they appear in the YAML document.
const (
	ScopeOne   Scope = "scope1"
	ScopeTwo   Scope = "scope2"
	ScopeThree Scope = "scope3"
)

// Activity identifies a single coefficient inside a scope.
type Activity string

// Scope 1 activities (vehicle fleet).
const (
	// DieselKm is kg CO2e per km for a diesel vehicle.
	DieselKm Activity = "diesel_km"
	// PetrolKm is kg CO2e per km for a petrol vehicle.
	PetrolKm Activity = "petrol_km"
	// HydrogenKm is kg CO2e per km for a hydrogen vehicle.
	HydrogenKm Activity = "hydrogen_km"
	// EVKWhPerKm is the energy intensity of an electric vehicle in kWh per km.
	EVKWhPerKm Activity = "ev_kwh_per_km"
)

// Scope 2 activities (purchased electricity).
const (
	GridKWh  Activity = "grid_kwh"
	GreenKWh Activity = "green_kwh"
)

// Scope 3 activities (other indirect).
const (
	// ServiceRoundTripKm is the distance driven per maintenance visit, in km.
	ServiceRoundTripKm Activity = "service_round_trip_km"
	// CloudGB is kg CO2e per GB of cloud traffic.
	CloudGB Activity = "cloud_gb"
	// CloudFlatYear is the flat yearly cloud footprint when no volume is known.
	CloudFlatYear Activity = "cloud_flat_year"
	// TransitKm is kg CO2e per passenger km on rail and public transit.
	TransitKm Activity = "transit_km"
	// PaperSheet is kg CO2e per printed sheet.
	PaperSheet Activity = "paper_sheet"
)

// requiredActivities lists the coefficients every table must define.
//
//nolint:gochecknoglobals // Lookup table, never mutated.
var requiredActivities = map[Scope][]Activity{
	ScopeOne:   {DieselKm, PetrolKm, HydrogenKm, EVKWhPerKm},
	ScopeTwo:   {GridKWh, GreenKWh},
	ScopeThree: {ServiceRoundTripKm, CloudGB, CloudFlatYear, TransitKm, PaperSheet},
}

// Compensation holds the constants used to express a footprint in
// human-scale comparators.
type Compensation struct {
	// TreeKgPerYear is the CO2 a single tree absorbs per year.
	TreeKgPerYear float64 `yaml:"tree_kg_per_year" json:"tree_kg_per_year"`

	// CO2DensityKgM3 is the density of CO2 gas at ambient conditions.
	CO2DensityKgM3 float64 `yaml:"co2_density_kg_m3" json:"co2_density_kg_m3"`

	// ReferenceAreaM2 is the footprint the gas column stands on (a football pitch).
	ReferenceAreaM2 float64 `yaml:"reference_area_m2" json:"reference_area_m2"`

	// ReferenceTowerM is the height of the landmark the column is compared with.
	ReferenceTowerM float64 `yaml:"reference_tower_m" json:"reference_tower_m"`

	// ReferenceTowerName is the display name of the landmark.
	ReferenceTowerName string `yaml:"reference_tower_name" json:"reference_tower_name"`
}

// Document is the serialized form of a Table.
type Document struct {
	Version      string             `yaml:"version"`
	Scope1       map[string]float64 `yaml:"scope1"`
	Scope2       map[string]float64 `yaml:"scope2"`
	Scope3       map[string]float64 `yaml:"scope3"`
	Compensation Compensation       `yaml:"compensation"`
}

func (d Document) section(s Scope) map[string]float64 {
	switch s {
	case ScopeOne:
		return d.Scope1
	case ScopeTwo:
		return d.Scope2
	case ScopeThree:
		return d.Scope3
	default:
		return nil
	}
}
