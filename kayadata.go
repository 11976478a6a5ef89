// Package kayadata provides curated Kaya-identity reference data and thin
// query functions over it.
//
// The Kaya identity decomposes a region's fossil CO2 emissions F into
// population P, per-capita GDP G/P, energy intensity of GDP E/G, and carbon
// intensity of energy F/E. The package embeds four read-only tables
// (historical series, fuel mix, top-down projected values, top-down trends)
// and exposes lookup, filter, and derivation operations that keep the
// derived ratios consistent with the selected GDP convention.
//
// All tables are immutable after load and every query is a pure function
// over them, so a Dataset is safe for concurrent use without coordination.
package kayadata

import "sync"

// Dataset holds the four immutable backing tables plus the manifest metadata
// they were loaded with. Construct one with Load, Default, or NewDataset.
type Dataset struct {
	// SchemaVersion is the manifest's declared schema version.
	SchemaVersion string
	// DataVintage identifies the upstream statistical release the tables
	// were extracted from.
	DataVintage string

	historical []HistoricalRow
	fuelMix    []FuelMixRow
	tdValues   []TopDownRow
	tdTrends   []TrendRow
}

// NewDataset builds a Dataset directly from caller-supplied rows, bypassing
// the embedded CSV extracts. Intended for tests and alternate data extracts.
// The slices are used as-is and must not be mutated afterwards.
func NewDataset(historical []HistoricalRow, fuelMix []FuelMixRow, tdValues []TopDownRow, tdTrends []TrendRow) *Dataset {
	return &Dataset{
		historical: historical,
		fuelMix:    fuelMix,
		tdValues:   tdValues,
		tdTrends:   tdTrends,
	}
}

// defaultDataset memoises the embedded dataset so every caller shares one
// parsed copy.
var defaultDataset = sync.OnceValues(func() (*Dataset, error) {
	return Load()
})

// Default returns the process-wide Dataset backed by the embedded extracts,
// loading it on first use. It panics if the compiled-in data cannot be
// parsed, since that is a defect in the build rather than a runtime
// condition a caller could handle.
func Default() *Dataset {
	ds, err := defaultDataset()
	if err != nil {
		panic("kayadata: embedded dataset is invalid: " + err.Error())
	}
	return ds
}
