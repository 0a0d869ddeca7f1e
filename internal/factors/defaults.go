package factors

// DefaultVersion is the version of the built-in table.
const DefaultVersion = "1.0.0"

// Built-in coefficients. Vehicle and electricity values follow German
// averages; compensation constants are rounded reference values.
const (
	defaultDieselKm           = 0.170
	defaultPetrolKm           = 0.160
	defaultHydrogenKm         = 0.090
	defaultEVKWhPerKm         = 0.18
	defaultGridKWh            = 0.380
	defaultGreenKWh           = 0.030
	defaultServiceRoundTripKm = 60.0
	defaultCloudGB            = 0.005
	defaultCloudFlatYear      = 120.0
	defaultTransitKm          = 0.046
	defaultPaperSheet         = 0.005

	defaultTreeKgPerYear   = 12.5
	defaultCO2DensityKgM3  = 1.98
	defaultReferenceAreaM2 = 7140.0 // 105 m x 68 m pitch
	defaultReferenceTowerM = 368.0
	defaultReferenceTower  = "Berliner Fernsehturm"
)

// DefaultDocument returns a fresh copy of the built-in table document.
func DefaultDocument() Document {
	return Document{
		Version: DefaultVersion,
		Scope1: map[string]float64{
			string(DieselKm):   defaultDieselKm,
			string(PetrolKm):   defaultPetrolKm,
			string(HydrogenKm): defaultHydrogenKm,
			string(EVKWhPerKm): defaultEVKWhPerKm,
		},
		Scope2: map[string]float64{
			string(GridKWh):  defaultGridKWh,
			string(GreenKWh): defaultGreenKWh,
		},
		Scope3: map[string]float64{
			string(ServiceRoundTripKm): defaultServiceRoundTripKm,
			string(CloudGB):            defaultCloudGB,
			string(CloudFlatYear):      defaultCloudFlatYear,
			string(TransitKm):          defaultTransitKm,
			string(PaperSheet):         defaultPaperSheet,
		},
		Compensation: Compensation{
			TreeKgPerYear:      defaultTreeKgPerYear,
			CO2DensityKgM3:     defaultCO2DensityKgM3,
			ReferenceAreaM2:    defaultReferenceAreaM2,
			ReferenceTowerM:    defaultReferenceTowerM,
			ReferenceTowerName: defaultReferenceTower,
		},
	}
}

// Default returns the built-in table.
func Default() *Table {
	t, err := New(DefaultDocument())
	if err != nil {
		// The built-in document is covered by tests; reaching this is a programming error.
		panic(err)
	}
	return t
}
