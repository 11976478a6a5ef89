package kayadata

// Energy and mass conversion constants.
// Source: EIA unit conversion tables, https://www.eia.gov/energyexplained/units-and-calculators/
const (
	// EJPerQuad is exajoules per quad. One quad is 10^15 Btu = 1.05506 EJ.
	EJPerQuad = 1.05506

	// TWhPerQuad is terawatt hours of electricity per quad of primary energy.
	TWhPerQuad = 293.07

	// MMBtuPerQuad is million Btu per quad.
	MMBtuPerQuad = 1e9

	// TonsCO2PerTonC converts a mass of carbon to the mass of CO2 formed
	// from it (molar mass ratio 44/12).
	TonsCO2PerTonC = 44.0 / 12.0

	// GWContinuousPerQuadYear is the average power in gigawatts that
	// delivers one quad over a calendar year (TWhPerQuad * 1000 / 8766 h).
	GWContinuousPerQuadYear = 33.43
)

// EmissionsFactor gives the CO2 emitted per quad of a fossil fuel.
type EmissionsFactor struct {
	Fuel Fuel `json:"fuel"`
	// MMTCO2PerQuad is million metric tons of CO2 per quad burned. The EIA
	// publishes these as kg CO2 per million Btu, which is numerically the
	// same quantity.
	MMTCO2PerQuad float64 `json:"mmtCO2PerQuad"`
}

// EmissionsFactors returns combustion emission factors for the fossil fuel
// categories. The slice is freshly allocated; callers may mutate it.
//
// Source: EIA carbon dioxide emissions coefficients,
// https://www.eia.gov/environment/emissions/co2_vol_mass.php
func EmissionsFactors() []EmissionsFactor {
	return []EmissionsFactor{
		{Fuel: FuelCoal, MMTCO2PerQuad: 95.35},
		{Fuel: FuelNaturalGas, MMTCO2PerQuad: 52.91},
		{Fuel: FuelOil, MMTCO2PerQuad: 70.66},
	}
}

// GenerationCapacity gives the nameplate capacity a generating technology
// needs to supply one quad of electricity per year at its typical capacity
// factor.
type GenerationCapacity struct {
	Technology     string  `json:"technology"`
	CapacityFactor float64 `json:"capacityFactor"`
	// GWPerQuadYear is nameplate gigawatts per quad per year:
	// GWContinuousPerQuadYear divided by the capacity factor.
	GWPerQuadYear float64 `json:"gwPerQuadYear"`
}

// GenerationCapacities returns capacity requirements per technology at
// typical utilisation. The slice is freshly allocated; callers may mutate it.
//
// Capacity factors are representative fleet averages.
// Source: EIA Electric Power Monthly, table 6.07.B.
func GenerationCapacities() []GenerationCapacity {
	factors := []struct {
		technology string
		cf         float64
	}{
		{"Nuclear", 0.93},
		{"Natural Gas Combined Cycle", 0.57},
		{"Coal", 0.42},
		{"Hydro", 0.37},
		{"Wind", 0.33},
		{"Solar PV", 0.23},
		{"Geothermal", 0.69},
	}
	out := make([]GenerationCapacity, 0, len(factors))
	for _, f := range factors {
		out = append(out, GenerationCapacity{
			Technology:     f.technology,
			CapacityFactor: f.cf,
			GWPerQuadYear:  GWContinuousPerQuadYear / f.cf,
		})
	}
	return out
}
