package kayadata

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Supported dataset schema range. The manifest's major version must match
// supportedSchemaMajor exactly, and its minor version must not exceed
// supportedSchemaMinor: a newer minor can add columns this library would
// silently ignore, so it is rejected rather than misread.
const (
	supportedSchemaMajor = 1
	supportedSchemaMinor = 2
)

//go:embed data/kaya.csv data/fuel_mix.csv data/td_values.csv data/td_trends.csv data/manifest.yaml
var dataFS embed.FS

// manifest mirrors data/manifest.yaml.
type manifest struct {
	SchemaVersion string                   `yaml:"schema_version"`
	DataVintage   string                   `yaml:"data_vintage"`
	Tables        map[string]manifestTable `yaml:"tables"`
	Sources       []string                 `yaml:"sources"`
}

// manifestTable describes one backing table in the manifest.
type manifestTable struct {
	File  string `yaml:"file"`
	Rows  int    `yaml:"rows"`
	Years []int  `yaml:"years,omitempty"`
}

// Load parses the embedded CSV extracts into a fresh Dataset. The manifest's
// schema version is checked first; the four tables are then parsed
// concurrently and their row counts cross-checked against the manifest.
// Load performs no data correction: documented source inconsistencies ship
// exactly as published.
//
// Most callers want Default, which memoises the result.
func Load() (*Dataset, error) {
	rawManifest, err := dataFS.ReadFile("data/manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded manifest: %w", err)
	}
	m, err := parseManifest(rawManifest)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		SchemaVersion: m.SchemaVersion,
		DataVintage:   m.DataVintage,
	}

	var g errgroup.Group
	g.Go(func() error {
		raw, readErr := dataFS.ReadFile("data/kaya.csv")
		if readErr != nil {
			return fmt.Errorf("reading embedded kaya.csv: %w", readErr)
		}
		ds.historical, readErr = parseHistorical(raw)
		return readErr
	})
	g.Go(func() error {
		raw, readErr := dataFS.ReadFile("data/fuel_mix.csv")
		if readErr != nil {
			return fmt.Errorf("reading embedded fuel_mix.csv: %w", readErr)
		}
		ds.fuelMix, readErr = parseFuelMix(raw)
		return readErr
	})
	g.Go(func() error {
		raw, readErr := dataFS.ReadFile("data/td_values.csv")
		if readErr != nil {
			return fmt.Errorf("reading embedded td_values.csv: %w", readErr)
		}
		ds.tdValues, readErr = parseTopDownValues(raw)
		return readErr
	})
	g.Go(func() error {
		raw, readErr := dataFS.ReadFile("data/td_trends.csv")
		if readErr != nil {
			return fmt.Errorf("reading embedded td_trends.csv: %w", readErr)
		}
		ds.tdTrends, readErr = parseTopDownTrends(raw)
		return readErr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := map[string]int{
		"kaya":      len(ds.historical),
		"fuel_mix":  len(ds.fuelMix),
		"td_values": len(ds.tdValues),
		"td_trends": len(ds.tdTrends),
	}
	for name, got := range counts {
		decl, ok := m.Tables[name]
		if !ok {
			return nil, fmt.Errorf("%w: manifest is missing table %q", ErrDataFormat, name)
		}
		if decl.Rows != got {
			return nil, fmt.Errorf("%w: table %s has %d rows, manifest declares %d",
				ErrDataFormat, name, got, decl.Rows)
		}
	}

	log.Debug().
		Str("component", "kayadata").
		Str("schema_version", ds.SchemaVersion).
		Str("data_vintage", ds.DataVintage).
		Int("historical_rows", len(ds.historical)).
		Int("fuel_mix_rows", len(ds.fuelMix)).
		Int("td_value_rows", len(ds.tdValues)).
		Int("td_trend_rows", len(ds.tdTrends)).
		Msg("embedded dataset loaded")

	return ds, nil
}

// parseManifest unmarshals and version-gates the dataset manifest.
func parseManifest(raw []byte) (*manifest, error) {
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("%w: parsing manifest: %v", ErrDataFormat, err)
	}
	if err := checkSchemaVersion(m.SchemaVersion); err != nil {
		return nil, err
	}
	return &m, nil
}

// checkSchemaVersion enforces the supported schema range.
func checkSchemaVersion(raw string) error {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %v", ErrSchemaVersion, raw, err)
	}
	if v.Major() != supportedSchemaMajor || v.Minor() > supportedSchemaMinor {
		return fmt.Errorf("%w: manifest declares %s, this library reads %d.%d.x and earlier minors",
			ErrSchemaVersion, raw, supportedSchemaMajor, supportedSchemaMinor)
	}
	return nil
}

// newTableReader wraps raw CSV bytes in a reader that enforces a fixed field
// count and has already consumed the header line.
func newTableReader(table string, raw []byte, fields int) (*csv.Reader, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = fields
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("%w: table %s: reading header: %v", ErrDataFormat, table, err)
	}
	return r, nil
}

// parseFloat converts one numeric CSV field, naming table, line, and column
// on failure.
func parseFloat(table string, line int, col, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: table %s line %d: column %s: %v", ErrDataFormat, table, line, col, err)
	}
	return v, nil
}

// parseInt converts one integer CSV field, naming table, line, and column
// on failure.
func parseInt(table string, line int, col, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: table %s line %d: column %s: %v", ErrDataFormat, table, line, col, err)
	}
	return v, nil
}

// parseHistorical parses the kaya.csv extract. Columns: region, region_code,
// geography, year, P, G, E, F, g, e, f, ef, G_ppp, G_mer.
func parseHistorical(raw []byte) ([]HistoricalRow, error) {
	const table = "kaya"
	r, err := newTableReader(table, raw, 14)
	if err != nil {
		return nil, err
	}
	var rows []HistoricalRow
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: table %s line %d: %v", ErrDataFormat, table, line, err)
		}
		row := HistoricalRow{Region: rec[0], Code: rec[1]}
		if row.Geography, err = ParseGeography(rec[2]); err != nil {
			return nil, fmt.Errorf("table %s line %d: %w", table, line, err)
		}
		if row.Year, err = parseInt(table, line, "year", rec[3]); err != nil {
			return nil, err
		}
		cols := []struct {
			name string
			dst  *float64
		}{
			{"P", &row.P}, {"G", &row.G}, {"E", &row.E}, {"F", &row.F},
			{"g", &row.GPC}, {"e", &row.EI}, {"f", &row.CI}, {"ef", &row.EF},
			{"G_ppp", &row.GPPP}, {"G_mer", &row.GMER},
		}
		for i, c := range cols {
			if *c.dst, err = parseFloat(table, line, c.name, rec[4+i]); err != nil {
				return nil, err
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseFuelMix parses the fuel_mix.csv extract. Columns: region, region_code,
// geography, year, fuel, quads, frac.
func parseFuelMix(raw []byte) ([]FuelMixRow, error) {
	const table = "fuel_mix"
	r, err := newTableReader(table, raw, 7)
	if err != nil {
		return nil, err
	}
	var rows []FuelMixRow
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: table %s line %d: %v", ErrDataFormat, table, line, err)
		}
		row := FuelMixRow{Region: rec[0], Code: rec[1]}
		if row.Geography, err = ParseGeography(rec[2]); err != nil {
			return nil, fmt.Errorf("table %s line %d: %w", table, line, err)
		}
		if row.Year, err = parseInt(table, line, "year", rec[3]); err != nil {
			return nil, err
		}
		if row.Fuel, err = ParseFuel(rec[4]); err != nil {
			return nil, fmt.Errorf("table %s line %d: %w", table, line, err)
		}
		if row.Quads, err = parseFloat(table, line, "quads", rec[5]); err != nil {
			return nil, err
		}
		if row.Frac, err = parseFloat(table, line, "frac", rec[6]); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseTopDownValues parses the td_values.csv extract. Columns: region,
// region_code, geography, year, P, G, E, F.
func parseTopDownValues(raw []byte) ([]TopDownRow, error) {
	const table = "td_values"
	r, err := newTableReader(table, raw, 8)
	if err != nil {
		return nil, err
	}
	var rows []TopDownRow
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: table %s line %d: %v", ErrDataFormat, table, line, err)
		}
		row := TopDownRow{Region: rec[0], Code: rec[1]}
		if row.Geography, err = ParseGeography(rec[2]); err != nil {
			return nil, fmt.Errorf("table %s line %d: %w", table, line, err)
		}
		if row.Year, err = parseInt(table, line, "year", rec[3]); err != nil {
			return nil, err
		}
		if row.P, err = parseFloat(table, line, "P", rec[4]); err != nil {
			return nil, err
		}
		if row.G, err = parseFloat(table, line, "G", rec[5]); err != nil {
			return nil, err
		}
		if row.E, err = parseFloat(table, line, "E", rec[6]); err != nil {
			return nil, err
		}
		if row.F, err = parseFloat(table, line, "F", rec[7]); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseTopDownTrends parses the td_trends.csv extract. Columns: region,
// region_code, geography, P, G, E, F (log-rates per year).
func parseTopDownTrends(raw []byte) ([]TrendRow, error) {
	const table = "td_trends"
	r, err := newTableReader(table, raw, 7)
	if err != nil {
		return nil, err
	}
	var rows []TrendRow
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: table %s line %d: %v", ErrDataFormat, table, line, err)
		}
		row := TrendRow{Region: rec[0], Code: rec[1]}
		if row.Geography, err = ParseGeography(rec[2]); err != nil {
			return nil, fmt.Errorf("table %s line %d: %w", table, line, err)
		}
		if row.P, err = parseFloat(table, line, "P", rec[3]); err != nil {
			return nil, err
		}
		if row.G, err = parseFloat(table, line, "G", rec[4]); err != nil {
			return nil, err
		}
		if row.E, err = parseFloat(table, line, "E", rec[5]); err != nil {
			return nil, err
		}
		if row.F, err = parseFloat(table, line, "F", rec[6]); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
