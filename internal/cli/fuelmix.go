package cli

import (
	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/logging"
)

// fuelMixParams holds the parameters for the fuel-mix command execution.
type fuelMixParams struct {
	code     string
	collapse bool
}

// NewFuelMixCmd creates the "fuel-mix" command reporting each region's
// latest-year primary energy mix.
func NewFuelMixCmd() *cobra.Command {
	var params fuelMixParams

	cmd := &cobra.Command{
		Use:   "fuel-mix <region>...",
		Short: "Latest-year primary energy mix by fuel",
		Long: `Report each requested region's primary energy consumption by fuel for
that region's own latest year in the fuel mix table, as absolute quads and
as a share of the region's total.

With --collapse-renewables the Hydro category is folded into Renewables and
every region reports the same five categories, absent fuels as zero. Shares
are republished as-is: regions whose shares do not sum to one stay that way.`,
		Example: fuelMixCmdExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeFuelMix(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.code, "code", "", "select a region by code instead of name")
	cmd.Flags().BoolVar(&params.collapse, "collapse-renewables", false,
		"fold Hydro into Renewables and zero-fill absent fuels")

	return cmd
}

const fuelMixCmdExample = `  # World mix, six categories
  kaya fuel-mix World

  # Collapsed to five categories
  kaya fuel-mix World --collapse-renewables

  # Compare regions
  kaya fuel-mix Brazil China --output csv`

// executeFuelMix runs the fuel mix query for the "fuel-mix" command.
func executeFuelMix(cmd *cobra.Command, args []string, params fuelMixParams) error {
	if len(args) == 0 && params.code == "" {
		return errNoRegion
	}

	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg := configFromCmd(cmd)
	collapse := params.collapse || cfg.Query.CollapseRenewables

	ctx := cmd.Context()
	logging.FromContext(ctx).Debug().Ctx(ctx).Str("operation", "fuel_mix").
		Strs("regions", args).Bool("collapse", collapse).Msg("querying fuel mix")

	diag := &kayadata.Diagnostics{}
	rows := kayadata.Default().FuelMix(
		kayadata.RegionQuery{Names: args, Code: params.code}, collapse, diag)
	reportDiagnostics(cmd, diag)

	return renderFuelMixRows(cmd.OutOrStdout(), format, rows)
}
