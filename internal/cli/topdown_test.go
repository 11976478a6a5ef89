package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayatools/kayadata"
)

func TestTrendsCmd_JSON(t *testing.T) {
	cmd, buf := newRootCmd(t, "trends", "World", "--output", "json")

	require.NoError(t, cmd.Execute())

	var rows []kayadata.TrendRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)

	row := rows[0]
	assert.InDelta(t, 0.0085, row.P, 1e-9)
	assert.InDelta(t, 0.025, row.G, 1e-9)
	// Ratio trends are differences of the stored rates.
	assert.InDelta(t, 0.025-0.0085, row.GPC, 1e-12)
	assert.InDelta(t, 0.01-0.025, row.EI, 1e-12)
}

func TestTrendsCmd_RequiresRegion(t *testing.T) {
	cmd, _ := newRootCmd(t, "trends")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least one region name or --code")
}

func TestTrendsCmd_Table(t *testing.T) {
	cmd, buf := newRootCmd(t, "trends", "World")

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "GDP/CAP")
	assert.Contains(t, output, "0.0085")
}

func TestValuesCmd_JSON(t *testing.T) {
	cmd, buf := newRootCmd(t, "values", "World", "--output", "json")

	require.NoError(t, cmd.Execute())

	var rows []kayadata.KayaRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 7)

	first := rows[0]
	assert.Equal(t, 2020, first.Year)
	assert.InDelta(t, 7.821, first.P, 1e-9)
	assert.InDelta(t, 82.3, first.G, 1e-9)
	// Derived ratios come from the stored anchor values.
	assert.InDelta(t, 82.3/7.821, first.GPC, 1e-9)
}

func TestValuesCmd_CodeQuery(t *testing.T) {
	cmd, buf := newRootCmd(t, "values", "--code", "CHN", "--output", "json")

	require.NoError(t, cmd.Execute())

	var rows []kayadata.KayaRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.NotEmpty(t, rows)
	for _, r := range rows {
		assert.Equal(t, "China", r.Region)
	}
}
