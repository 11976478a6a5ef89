package kayadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGDPConvention(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    GDPConvention
		wantErr bool
	}{
		{name: "MER uppercase", input: "MER", want: MER},
		{name: "ppp lowercase", input: "ppp", want: PPP},
		{name: "mixed case with padding", input: " Ppp ", want: PPP},
		{name: "unknown convention", input: "NOMINAL", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGDPConvention(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConvention)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGDPConventionValidate(t *testing.T) {
	assert.NoError(t, MER.Validate())
	assert.NoError(t, PPP.Validate())
	assert.ErrorIs(t, GDPConvention(7).Validate(), ErrInvalidConvention)
}

func TestFuelCategoryOrder(t *testing.T) {
	// Sorting and display depend on the declaration order of the category
	// set: Coal, Natural Gas, Oil, Nuclear, Hydro, Renewables.
	want := []Fuel{FuelCoal, FuelNaturalGas, FuelOil, FuelNuclear, FuelHydro, FuelRenewables}
	for i := 1; i < len(want); i++ {
		assert.Less(t, int(want[i-1]), int(want[i]))
	}
	assert.Equal(t, 6, int(fuelCount))
}

func TestParseFuelRoundTrip(t *testing.T) {
	for f := FuelCoal; f < fuelCount; f++ {
		parsed, err := ParseFuel(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFuel("Peat")
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestParseGeography(t *testing.T) {
	for _, g := range []Geography{GeoNation, GeoRegion, GeoWorld} {
		parsed, err := ParseGeography(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}

	_, err := ParseGeography("continent")
	assert.ErrorIs(t, err, ErrDataFormat)
}

func TestEnumJSON(t *testing.T) {
	raw, err := json.Marshal(FuelNaturalGas)
	require.NoError(t, err)
	assert.Equal(t, `"Natural Gas"`, string(raw))

	var f Fuel
	require.NoError(t, json.Unmarshal([]byte(`"Hydro"`), &f))
	assert.Equal(t, FuelHydro, f)

	raw, err = json.Marshal(GeoWorld)
	require.NoError(t, err)
	assert.Equal(t, `"world"`, string(raw))

	var c GDPConvention
	require.NoError(t, json.Unmarshal([]byte(`"PPP"`), &c))
	assert.Equal(t, PPP, c)

	assert.Error(t, json.Unmarshal([]byte(`"GDP"`), &c))
}

func TestTableIDValidate(t *testing.T) {
	for _, id := range []TableID{TableHistorical, TableFuelMix, TableTopDownValues, TableTopDownTrends} {
		assert.NoError(t, id.Validate())
	}
	assert.ErrorIs(t, TableID(9).Validate(), ErrBadTable)
}
