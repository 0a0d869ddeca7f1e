// Package emissions turns an input snapshot into Scope 1, 2 and 3 totals.
//
// All functions are pure and never fail: missing or garbled inputs read as
// zero (see input.Snapshot) and degenerate denominators yield zero instead of
// NaN. Results are in kg CO2e and are not rounded.
package emissions

import (
	"math"
	"strings"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/input"
)

// percent converts the green-electricity percentage input into a share.
const percent = 100.0

// Result holds the aggregated footprint in kg CO2e.
type Result struct {
	Scope1 float64 `json:"scope1_kg"`
	Scope2 float64 `json:"scope2_kg"`
	Scope3 float64 `json:"scope3_kg"`
	Total  float64 `json:"total_kg"`
}

// Compute aggregates all three scopes for one calculation run.
//
// The blended electricity factor is derived once here and shared by every
// term that consumes grid electricity, so all uses within a run agree.
func Compute(snap input.Snapshot, table *factors.Table) Result {
	electricity := ElectricityFactor(snap.Number(input.FieldGreenShare), table)

	s1 := Scope1(snap, table, electricity)
	s2 := Scope2(snap, electricity)
	s3 := Scope3(snap, table, electricity)

	return Result{
		Scope1: s1,
		Scope2: s2,
		Scope3: s3,
		Total:  s1 + s2 + s3,
	}
}

// GreenShare converts a percentage (0-100) into a share clamped to [0, 1].
func GreenShare(percentage float64) float64 {
	if math.IsNaN(percentage) {
		return 0
	}
	clamped := math.Min(math.Max(percentage, 0), percent)
	return clamped / percent
}

// ElectricityFactor blends the grid and green electricity factors by the
// green share: (1-share)*grid + share*green, in kg CO2e per kWh.
func ElectricityFactor(greenPercentage float64, table *factors.Table) float64 {
	share := GreenShare(greenPercentage)
	grid := table.Coefficient(factors.ScopeTwo, factors.GridKWh)
	green := table.Coefficient(factors.ScopeTwo, factors.GreenKWh)
	return (1-share)*grid + share*green
}

// Scope1 computes direct fleet emissions. Total fleet kilometres are split
// across propulsion types by vehicle count share. Without kilometres or
// without vehicles the scope is 0.
func Scope1(snap input.Snapshot, table *factors.Table, electricity float64) float64 {
	kmTotal := snap.Number(input.FieldKmTotal)
	diesel := snap.Number(input.FieldVehiclesDiesel)
	petrol := snap.Number(input.FieldVehiclesPetrol)
	electric := snap.Number(input.FieldVehiclesElectric)
	hydrogen := snap.Number(input.FieldVehiclesHydrogen)

	count := diesel + petrol + electric + hydrogen
	if kmTotal <= 0 || count <= 0 {
		return 0
	}

	share := func(n float64) float64 { return kmTotal * n / count }

	return share(diesel)*table.Coefficient(factors.ScopeOne, factors.DieselKm) +
		share(petrol)*table.Coefficient(factors.ScopeOne, factors.PetrolKm) +
		share(hydrogen)*table.Coefficient(factors.ScopeOne, factors.HydrogenKm) +
		share(electric)*table.Coefficient(factors.ScopeOne, factors.EVKWhPerKm)*electricity
}

// Scope2 computes emissions from purchased electricity and cooling energy.
func Scope2(snap input.Snapshot, electricity float64) float64 {
	kwh := snap.Number(input.FieldElectricityKWh) + snap.Number(input.FieldCoolingKWh)
	return kwh * electricity
}

// Scope3 sums service trips, cloud usage, commuting and printing.
func Scope3(snap input.Snapshot, table *factors.Table, electricity float64) float64 {
	b := Scope3Breakdown(snap, table, electricity)
	return b.ServiceTrips + b.Cloud + b.Commuting + b.Printing
}

// Breakdown lists the individual Scope 3 contributions in kg CO2e.
type Breakdown struct {
	ServiceTrips float64 `json:"service_trips_kg"`
	Cloud        float64 `json:"cloud_kg"`
	Commuting    float64 `json:"commuting_kg"`
	Printing     float64 `json:"printing_kg"`
}

// Scope3Breakdown computes each Scope 3 contribution separately.
func Scope3Breakdown(snap input.Snapshot, table *factors.Table, electricity float64) Breakdown {
	return Breakdown{
		ServiceTrips: ServiceTrips(snap, table),
		Cloud:        Cloud(snap, table),
		Commuting:    Commuting(snap, table, electricity),
		Printing:     snap.Number(input.FieldPrintedSheets) * table.Coefficient(factors.ScopeThree, factors.PaperSheet),
	}
}

// ServiceTrips computes the emissions of maintenance visits that were not
// avoided by bundling. The visit count never goes below 0.
func ServiceTrips(snap input.Snapshot, table *factors.Table) float64 {
	net := math.Max(snap.Number(input.FieldServiceVisits)-snap.Number(input.FieldServiceVisitsAvoided), 0)
	return net *
		table.Coefficient(factors.ScopeThree, factors.ServiceRoundTripKm) *
		table.Coefficient(factors.ScopeOne, factors.DieselKm)
}

// Cloud computes the yearly cloud footprint. Usage that is not affirmative
// contributes nothing, whatever volume is present.
func Cloud(snap input.Snapshot, table *factors.Table) float64 {
	usage := snap.Enum(input.FieldCloudUsage)
	if !IsAffirmative(usage) {
		return 0
	}
	if IsVolumeBased(usage) {
		const monthsPerYear = 12
		return snap.Number(input.FieldCloudGBMonth) * monthsPerYear *
			table.Coefficient(factors.ScopeThree, factors.CloudGB)
	}
	return table.Coefficient(factors.ScopeThree, factors.CloudFlatYear)
}

// Commuting computes employee commuting emissions. Car commuting always uses
// the diesel factor and motorcycles use the petrol factor. Cycling is free.
func Commuting(snap input.Snapshot, table *factors.Table, electricity float64) float64 {
	car := snap.Number(input.FieldCommuteCarKm) * table.Coefficient(factors.ScopeOne, factors.DieselKm)
	ev := snap.Number(input.FieldCommuteEVKm) *
		table.Coefficient(factors.ScopeOne, factors.EVKWhPerKm) * electricity
	motorcycle := snap.Number(input.FieldCommuteMotorcycleKm) * table.Coefficient(factors.ScopeOne, factors.PetrolKm)
	transit := snap.Number(input.FieldCommuteTransitKm) * table.Coefficient(factors.ScopeThree, factors.TransitKm)
	return car + ev + motorcycle + transit
}

// IsAffirmative reports whether an enumerated answer means "used".
func IsAffirmative(value string) bool {
	return strings.HasPrefix(strings.TrimSpace(value), input.AffirmativePrefix)
}

// IsVolumeBased reports whether a cloud usage answer is billed by volume.
func IsVolumeBased(value string) bool {
	return strings.Contains(strings.ToLower(value), input.VolumeMarker)
}
