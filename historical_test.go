package kayadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistorical_MERIsDefaultConvention(t *testing.T) {
	ds := Default()
	var diag Diagnostics

	rows, err := ds.Historical(RegionQuery{Names: []string{"Brazil"}}, MER, &diag)
	require.NoError(t, err)
	require.Len(t, rows, 43, "annual coverage 1980-2022")
	assert.Equal(t, 0, diag.Len())

	first := rows[0]
	assert.Equal(t, "Brazil", first.Region)
	assert.Equal(t, "BRA", first.Code)
	assert.Equal(t, GeoNation, first.Geography)
	assert.Equal(t, 1980, first.Year)
	assert.InDelta(t, 0.1223, first.P, 1e-12)
	assert.InDelta(t, 0.87, first.G, 1e-12, "MER G is the stored market-rate GDP")
	assert.InDelta(t, 7.11365, first.GPC, 1e-12, "MER returns the stored derived ratios untouched")
}

func TestHistorical_PPPSwapsGDPColumn(t *testing.T) {
	ds := Default()

	rows, err := ds.Historical(RegionQuery{Names: []string{"United Kingdom"}}, PPP, nil)
	require.NoError(t, err)
	require.Len(t, rows, 43)

	// Under PPP, G must equal the stored G_ppp column year for year, and the
	// GDP-dependent ratios must be recomputed from it.
	ppp := make(map[int]HistoricalRow, 43)
	for _, hr := range ds.historical {
		if hr.Region == "United Kingdom" {
			ppp[hr.Year] = hr
		}
	}
	for _, row := range rows {
		stored := ppp[row.Year]
		assert.InDelta(t, stored.GPPP, row.G, 1e-12, "year %d", row.Year)
		assert.InDelta(t, row.G/row.P, row.GPC, 1e-12)
		assert.InDelta(t, row.E/row.G, row.EI, 1e-12)
		assert.InDelta(t, row.F/row.G, row.EF, 1e-12)
		assert.InDelta(t, stored.CI, row.CI, 1e-12, "f=F/E has no GDP term and is retained")
	}
}

func TestHistorical_RatiosConsistentUnderBothConventions(t *testing.T) {
	ds := Default()

	for _, region := range ds.Regions() {
		for _, gdp := range []GDPConvention{MER, PPP} {
			rows, err := ds.Historical(RegionQuery{Names: []string{region}}, gdp, nil)
			require.NoError(t, err)
			require.NotEmpty(t, rows)

			for _, row := range rows {
				// Stored MER ratios were derived from values rounded to six
				// significant digits, so allow a small relative tolerance.
				assert.InEpsilon(t, row.G/row.P, row.GPC, 1e-4, "%s %d %s g", region, row.Year, gdp)
				assert.InEpsilon(t, row.E/row.G, row.EI, 1e-4, "%s %d %s e", region, row.Year, gdp)
				assert.InEpsilon(t, row.F/row.E, row.CI, 1e-4, "%s %d %s f", region, row.Year, gdp)
				assert.InEpsilon(t, row.F/row.G, row.EF, 1e-4, "%s %d %s ef", region, row.Year, gdp)
			}
		}
	}
}

func TestHistorical_InvalidConventionIsFatal(t *testing.T) {
	ds := Default()
	var diag Diagnostics

	rows, err := ds.Historical(RegionQuery{Names: []string{"Brazil"}}, GDPConvention(7), &diag)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConvention)
	assert.Nil(t, rows)
	assert.Equal(t, 0, diag.Len(), "fatal errors never go through the diagnostic sink")
}

func TestHistorical_EmptyResultPolicy(t *testing.T) {
	ds := Default()

	t.Run("unknown region warns once", func(t *testing.T) {
		var diag Diagnostics
		rows, err := ds.Historical(RegionQuery{Names: []string{"Atlantis"}}, MER, &diag)
		require.NoError(t, err)
		assert.Empty(t, rows)
		require.Equal(t, 1, diag.Len())
		assert.Contains(t, diag.Messages()[0], "Atlantis")
	})

	t.Run("nil sink suppresses the warning", func(t *testing.T) {
		rows, err := ds.Historical(RegionQuery{Names: []string{"Atlantis"}}, MER, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("failed code lookup warns exactly once", func(t *testing.T) {
		var diag Diagnostics
		rows, err := ds.Historical(RegionQuery{Code: "ZZZ"}, MER, &diag)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, 1, diag.Len(), "the code-resolution warning must not be doubled by an empty-result warning")
	})
}

func TestHistorical_CodeQuery(t *testing.T) {
	ds := Default()
	var diag Diagnostics

	rows, err := ds.Historical(RegionQuery{Code: "JPN"}, MER, &diag)
	require.NoError(t, err)
	require.Len(t, rows, 43)
	assert.Equal(t, 0, diag.Len())
	for _, row := range rows {
		assert.Equal(t, "Japan", row.Region)
	}
}

func TestHistorical_MultiRegionKeepsTableOrder(t *testing.T) {
	ds := Default()

	// India precedes China in the input list, but the table stores China
	// first; a single filtering pass keeps the table's order.
	rows, err := ds.Historical(RegionQuery{Names: []string{"India", "China"}}, MER, nil)
	require.NoError(t, err)
	require.Len(t, rows, 86)
	assert.Equal(t, "China", rows[0].Region)
	assert.Equal(t, "China", rows[42].Region)
	assert.Equal(t, "India", rows[43].Region)
	assert.Equal(t, "India", rows[85].Region)
}

func BenchmarkHistorical(b *testing.B) {
	ds := Default()
	q := RegionQuery{Names: []string{"World"}}
	for i := 0; i < b.N; i++ {
		_, _ = ds.Historical(q, PPP, nil)
	}
}
