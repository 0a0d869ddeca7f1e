// Package input holds the flat key/value snapshot a calculation runs on.
//
// A Snapshot is built fresh for every calculation from whatever the
// collecting layer supplied. Reads are fail-soft: a missing or garbled
// numeric field reads as 0 and a missing enumerated field reads as its
// "not used" sentinel.
package input

// Numeric field names.
const (
	FieldKmTotal              = "km_total"
	FieldVehiclesDiesel       = "vehicles_diesel"
	FieldVehiclesPetrol       = "vehicles_petrol"
	FieldVehiclesElectric     = "vehicles_electric"
	FieldVehiclesHydrogen     = "vehicles_hydrogen"
	FieldElectricityKWh       = "electricity_kwh"
	FieldCoolingKWh           = "cooling_kwh"
	FieldGreenShare           = "green_share"
	FieldServiceVisits        = "service_visits"
	FieldServiceVisitsAvoided = "service_visits_avoided"
	FieldCloudGBMonth         = "cloud_gb_month"
	FieldCommuteCarKm         = "commute_car_km"
	FieldCommuteEVKm          = "commute_ev_km"
	FieldCommuteMotorcycleKm  = "commute_motorcycle_km"
	FieldCommuteTransitKm     = "commute_transit_km"
	FieldCommuteBikeKm        = "commute_bike_km"
	FieldPrintedSheets        = "printed_sheets"
)

// Enumerated field names.
const (
	FieldCloudUsage = "cloud_usage"
)

// Cloud usage values offered by the collecting form.
const (
	CloudUnused = "Nein"
	CloudVolume = "Ja - nach Datenvolumen"
	CloudFlat   = "Ja - pauschal"
)

// Markers used to interpret enumerated values.
const (
	// AffirmativePrefix marks an enumerated answer as "used".
	AffirmativePrefix = "Ja"
	// VolumeMarker marks a cloud usage answer as volume-based (matched case-insensitively).
	VolumeMarker = "volumen"
)

// enumDefaults maps enumerated fields to their sentinel value.
//
//nolint:gochecknoglobals // Lookup table, never mutated.
var enumDefaults = map[string]string{
	FieldCloudUsage: CloudUnused,
}

// KnownFields lists every field the aggregator reads.
func KnownFields() []string {
	return []string{
		FieldKmTotal, FieldVehiclesDiesel, FieldVehiclesPetrol, FieldVehiclesElectric,
		FieldVehiclesHydrogen, FieldElectricityKWh, FieldCoolingKWh, FieldGreenShare,
		FieldServiceVisits, FieldServiceVisitsAvoided, FieldCloudUsage, FieldCloudGBMonth,
		FieldCommuteCarKm, FieldCommuteEVKm, FieldCommuteMotorcycleKm, FieldCommuteTransitKm,
		FieldCommuteBikeKm, FieldPrintedSheets,
	}
}
