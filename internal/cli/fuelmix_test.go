package cli_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayatools/kayadata"
)

func TestFuelMixCmd_RequiresRegion(t *testing.T) {
	cmd, _ := newRootCmd(t, "fuel-mix")

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least one region name or --code")
}

func TestFuelMixCmd_JSON(t *testing.T) {
	cmd, buf := newRootCmd(t, "fuel-mix", "World", "--output", "json")

	require.NoError(t, cmd.Execute())

	var rows []kayadata.FuelMixRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 6)

	assert.Equal(t, kayadata.FuelCoal, rows[0].Fuel)
	assert.Equal(t, 2022, rows[0].Year)
	assert.InDelta(t, 162.899, rows[0].Quads, 1e-9)
	assert.Equal(t, kayadata.FuelRenewables, rows[5].Fuel)
}

func TestFuelMixCmd_Collapse(t *testing.T) {
	cmd, buf := newRootCmd(t, "fuel-mix", "World", "--collapse-renewables", "--output", "json")

	require.NoError(t, cmd.Execute())

	var rows []kayadata.FuelMixRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 5)

	for _, r := range rows {
		assert.NotEqual(t, kayadata.FuelHydro, r.Fuel)
	}
	last := rows[len(rows)-1]
	assert.Equal(t, kayadata.FuelRenewables, last.Fuel)
	assert.InDelta(t, 86.674, last.Quads, 1e-9)
}

func TestFuelMixCmd_CollapseDefaultFromConfig(t *testing.T) {
	cmd, buf := newRootCmd(t, "fuel-mix", "World", "--output", "json")
	writeConfigFile(t, "query:\n  collapse_renewables: true\n")

	require.NoError(t, cmd.Execute())

	var rows []kayadata.FuelMixRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	assert.Len(t, rows, 5)
}

func TestFuelMixCmd_Table(t *testing.T) {
	cmd, buf := newRootCmd(t, "fuel-mix", "Germany")

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "FUEL")
	assert.Contains(t, output, "Natural Gas")
	// Germany's latest fuel mix year is 2021.
	assert.Contains(t, output, "2021")
}

func TestFuelMixCmd_UnknownRegionIsEmpty(t *testing.T) {
	cmd, buf := newRootCmd(t, "fuel-mix", "Narnia", "--output", "json")

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}
