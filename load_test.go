package kayadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedDataset(t *testing.T) {
	ds := Default()
	require.NotNil(t, ds)

	// Row counts must match the manifest declarations Load cross-checks.
	assert.Len(t, ds.historical, 559)
	assert.Len(t, ds.fuelMix, 142)
	assert.Len(t, ds.tdValues, 56)
	assert.Len(t, ds.tdTrends, 8)

	assert.Equal(t, "1.2.0", ds.SchemaVersion)
	assert.Equal(t, "2024-07", ds.DataVintage)

	// Default memoises: every caller shares one parsed copy.
	assert.Same(t, ds, Default())
}

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "current version", version: "1.2.0"},
		{name: "older minor", version: "1.0.3"},
		{name: "patch ahead", version: "1.2.9"},
		{name: "newer minor rejected", version: "1.3.0", wantErr: true},
		{name: "newer major rejected", version: "2.0.0", wantErr: true},
		{name: "older major rejected", version: "0.9.0", wantErr: true},
		{name: "not semver", version: "latest", wantErr: true},
		{name: "empty", version: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkSchemaVersion(tt.version)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSchemaVersion)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseManifest_GatesVersion(t *testing.T) {
	good := []byte("schema_version: \"1.1.0\"\ndata_vintage: \"2023-01\"\n")
	m, err := parseManifest(good)
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", m.SchemaVersion)
	assert.Equal(t, "2023-01", m.DataVintage)

	_, err = parseManifest([]byte("schema_version: \"3.0.0\"\n"))
	assert.ErrorIs(t, err, ErrSchemaVersion)

	_, err = parseManifest([]byte("\t not yaml"))
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestParseHistorical(t *testing.T) {
	header := "region,region_code,geography,year,P,G,E,F,g,e,f,ef,G_ppp,G_mer\n"

	t.Run("valid row", func(t *testing.T) {
		raw := []byte(header +
			"World,WLD,world,1980,4.434,27.8,283,19400,6.26973,10.1799,68.5512,697.842,38,27.8\n")
		rows, err := parseHistorical(raw)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "World", rows[0].Region)
		assert.Equal(t, "WLD", rows[0].Code)
		assert.Equal(t, GeoWorld, rows[0].Geography)
		assert.Equal(t, 1980, rows[0].Year)
		assert.InDelta(t, 4.434, rows[0].P, 1e-12)
		assert.InDelta(t, 38.0, rows[0].GPPP, 1e-12)
		assert.InDelta(t, 27.8, rows[0].GMER, 1e-12)
	})

	t.Run("unparsable number names table line and column", func(t *testing.T) {
		raw := []byte(header +
			"World,WLD,world,1980,4.434,abc,283,19400,6.26973,10.1799,68.5512,697.842,38,27.8\n")
		_, err := parseHistorical(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDataFormat)
		assert.Contains(t, err.Error(), "table kaya line 2")
		assert.Contains(t, err.Error(), "column G")
	})

	t.Run("wrong field count", func(t *testing.T) {
		raw := []byte(header + "World,WLD,world,1980,4.434\n")
		_, err := parseHistorical(raw)
		assert.ErrorIs(t, err, ErrDataFormat)
	})

	t.Run("unknown geography", func(t *testing.T) {
		raw := []byte(header +
			"World,WLD,planet,1980,4.434,27.8,283,19400,6.26973,10.1799,68.5512,697.842,38,27.8\n")
		_, err := parseHistorical(raw)
		assert.ErrorIs(t, err, ErrDataFormat)
	})
}

func TestParseFuelMix(t *testing.T) {
	header := "region,region_code,geography,year,fuel,quads,frac\n"

	t.Run("valid row", func(t *testing.T) {
		raw := []byte(header + "World,WLD,world,2022,Natural Gas,143.208,0.2371\n")
		rows, err := parseFuelMix(raw)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, FuelNaturalGas, rows[0].Fuel)
		assert.InDelta(t, 143.208, rows[0].Quads, 1e-12)
		assert.InDelta(t, 0.2371, rows[0].Frac, 1e-12)
	})

	t.Run("unknown fuel", func(t *testing.T) {
		raw := []byte(header + "World,WLD,world,2022,Whale Oil,1,0.5\n")
		_, err := parseFuelMix(raw)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDataFormat)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestParseTopDownTables(t *testing.T) {
	values := []byte("region,region_code,geography,year,P,G,E,F\n" +
		"World,WLD,world,2020,7.821,82.3,557.2,33000\n")
	vrows, err := parseTopDownValues(values)
	require.NoError(t, err)
	require.Len(t, vrows, 1)
	assert.Equal(t, 2020, vrows[0].Year)
	assert.InDelta(t, 557.2, vrows[0].E, 1e-12)

	trends := []byte("region,region_code,geography,P,G,E,F\n" +
		"World,WLD,world,0.0085,0.025,0.01,0.004\n")
	trows, err := parseTopDownTrends(trends)
	require.NoError(t, err)
	require.Len(t, trows, 1)
	assert.InDelta(t, 0.0085, trows[0].P, 1e-12)
	assert.Zero(t, trows[0].GPC, "stored trend rows carry no derived rates")

	_, err = parseTopDownValues([]byte("region,region_code,geography,year,P,G,E,F\nWorld,WLD,world,x,1,2,3,4\n"))
	assert.ErrorIs(t, err, ErrDataFormat)
}
