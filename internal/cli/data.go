package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/logging"
)

// errNoRegion is returned when a data command is invoked without a region
// name or --code.
var errNoRegion = errors.New("requires at least one region name or --code")

// dataParams holds the parameters for the data command execution.
type dataParams struct {
	code string
	ppp  bool
}

// NewDataCmd creates the "data" command for querying the historical Kaya
// identity series.
//
// Registered flags:
//   - --code: select a single region by code instead of by name
//   - --ppp: report GDP at purchasing power parity instead of market
//     exchange rates
func NewDataCmd() *cobra.Command {
	var params dataParams

	cmd := &cobra.Command{
		Use:   "data <region>...",
		Short: "Historical Kaya identity series",
		Long: `Query the historical population, GDP, energy, and CO2 emissions series
together with the derived Kaya ratios (per-capita GDP, energy intensity,
carbon intensity, emissions factor).

By default GDP is reported at market exchange rates and the stored ratios
are returned as published. With --ppp the GDP column switches to purchasing
power parity and the GDP-dependent ratios are recomputed; carbon intensity
involves no GDP term and is unchanged.`,
		Example: dataCmdExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeData(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.code, "code", "", "select a region by code instead of name")
	cmd.Flags().BoolVar(&params.ppp, "ppp", false, "report GDP at purchasing power parity")

	return cmd
}

const dataCmdExample = `  # Full United States series
  kaya data "United States"

  # Several regions in one query
  kaya data China India Japan

  # Select by region code
  kaya data --code DEU

  # PPP convention, machine-readable
  kaya data World --ppp --output json`

// executeData runs the historical series query for the "data" command.
func executeData(cmd *cobra.Command, args []string, params dataParams) error {
	if len(args) == 0 && params.code == "" {
		return errNoRegion
	}

	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	gdp := configFromCmd(cmd).GDPConvention()
	if params.ppp {
		gdp = kayadata.PPP
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).Str("operation", "data").Strs("regions", args).
		Str("code", params.code).Stringer("gdp", gdp).Msg("querying historical series")

	diag := &kayadata.Diagnostics{}
	rows, err := kayadata.Default().Historical(
		kayadata.RegionQuery{Names: args, Code: params.code}, gdp, diag)
	if err != nil {
		return fmt.Errorf("querying historical series: %w", err)
	}
	reportDiagnostics(cmd, diag)

	return renderKayaRows(cmd.OutOrStdout(), format, rows)
}
