package kayadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopDownTrends_DerivedRatesAreLogRateDifferences(t *testing.T) {
	ds := Default()
	var diag Diagnostics

	rows := ds.TopDownTrends(RegionQuery{Names: []string{"World"}}, &diag)
	require.Len(t, rows, 1)
	assert.Equal(t, 0, diag.Len())

	world := rows[0]
	assert.InDelta(t, 0.0085, world.P, 1e-12)
	assert.InDelta(t, 0.025, world.G, 1e-12)
	// The growth rate of a ratio is the difference of the log-rates of its
	// parts, so g=G-P, e=E-G, f=F-E, ef=F-G. These are not compounded.
	assert.InDelta(t, 0.025-0.0085, world.GPC, 1e-12)
	assert.InDelta(t, 0.01-0.025, world.EI, 1e-12)
	assert.InDelta(t, 0.004-0.01, world.CI, 1e-12)
	assert.InDelta(t, 0.004-0.025, world.EF, 1e-12)
}

func TestTopDownTrends_AllRegionsConsistent(t *testing.T) {
	ds := Default()

	names := make([]string, 0, len(ds.tdTrends))
	for _, tr := range ds.tdTrends {
		names = append(names, tr.Region)
	}
	rows := ds.TopDownTrends(RegionQuery{Names: names}, nil)
	require.Len(t, rows, len(ds.tdTrends))

	for _, row := range rows {
		assert.InDelta(t, row.G-row.P, row.GPC, 1e-12, "%s g", row.Region)
		assert.InDelta(t, row.E-row.G, row.EI, 1e-12, "%s e", row.Region)
		assert.InDelta(t, row.F-row.E, row.CI, 1e-12, "%s f", row.Region)
		assert.InDelta(t, row.F-row.G, row.EF, 1e-12, "%s ef", row.Region)
	}
}

func TestTopDownTrends_StoredRowsStayClean(t *testing.T) {
	ds := Default()

	_ = ds.TopDownTrends(RegionQuery{Names: []string{"World"}}, nil)
	for _, tr := range ds.tdTrends {
		assert.Zero(t, tr.GPC, "queries must not write derived rates back into the table")
	}
}

func TestTopDownTrends_EmptyResultPolicy(t *testing.T) {
	ds := Default()

	// Germany is a historical region with no top-down trend coverage.
	var diag Diagnostics
	rows := ds.TopDownTrends(RegionQuery{Names: []string{"Germany"}}, &diag)
	assert.Empty(t, rows)
	require.Equal(t, 1, diag.Len())
	assert.Contains(t, diag.Messages()[0], "Germany")
}

func TestTopDownValues_DerivedRatios(t *testing.T) {
	ds := Default()

	rows := ds.TopDownValues(RegionQuery{Names: []string{"World"}}, nil)
	require.Len(t, rows, 7, "projection years 2020 through 2050 in five-year steps")

	first := rows[0]
	assert.Equal(t, 2020, first.Year)
	assert.InDelta(t, 82.3/7.821, first.GPC, 1e-12)
	assert.InDelta(t, 557.2/82.3, first.EI, 1e-12)
	assert.InDelta(t, 33000.0/557.2, first.CI, 1e-12)
	assert.InDelta(t, 33000.0/82.3, first.EF, 1e-12)

	for _, row := range rows {
		assert.InDelta(t, row.G/row.P, row.GPC, 1e-12, "%s %d", row.Region, row.Year)
		assert.InDelta(t, row.E/row.G, row.EI, 1e-12, "%s %d", row.Region, row.Year)
		assert.InDelta(t, row.F/row.E, row.CI, 1e-12, "%s %d", row.Region, row.Year)
		assert.InDelta(t, row.F/row.G, row.EF, 1e-12, "%s %d", row.Region, row.Year)
	}
}

func TestTopDownValues_CodeQuery(t *testing.T) {
	ds := Default()
	var diag Diagnostics

	rows := ds.TopDownValues(RegionQuery{Code: "CHN"}, &diag)
	require.Len(t, rows, 7)
	assert.Equal(t, 0, diag.Len())
	for _, row := range rows {
		assert.Equal(t, "China", row.Region)
	}
}

func TestTopDownValues_EmptyResultPolicy(t *testing.T) {
	ds := Default()

	var diag Diagnostics
	rows := ds.TopDownValues(RegionQuery{Names: []string{"Sri Lanka"}}, &diag)
	assert.Empty(t, rows)
	assert.Equal(t, 1, diag.Len())

	rows = ds.TopDownValues(RegionQuery{Names: []string{"Sri Lanka"}}, nil)
	assert.Empty(t, rows)
}
