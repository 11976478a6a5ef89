package cli

import (
	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/logging"
)

// NewTrendsCmd creates the "trends" command reporting top-down projection
// growth rates.
func NewTrendsCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "trends <region>...",
		Short: "Top-down projection growth rates",
		Long: `Report the assumed annual log-growth rates behind the top-down
projections: population, GDP, energy, and CO2, plus the derived ratio
trends (per-capita GDP, energy intensity, carbon intensity, emissions
factor) computed as differences of the stored rates.`,
		Example: `  # World growth assumptions
  kaya trends World

  # By region code
  kaya trends --code CHN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && code == "" {
				return errNoRegion
			}
			format, err := resolveOutputFormat(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logging.FromContext(ctx).Debug().Ctx(ctx).Str("operation", "trends").
				Strs("regions", args).Msg("querying projection trends")

			diag := &kayadata.Diagnostics{}
			rows := kayadata.Default().TopDownTrends(
				kayadata.RegionQuery{Names: args, Code: code}, diag)
			reportDiagnostics(cmd, diag)

			return renderTrendRows(cmd.OutOrStdout(), format, rows)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "select a region by code instead of name")

	return cmd
}

// NewValuesCmd creates the "values" command reporting top-down projection
// anchor values with derived Kaya ratios.
func NewValuesCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "values <region>...",
		Short: "Top-down projection anchor values",
		Long: `Report the projected population, GDP, energy, and CO2 values at each
stored anchor year, with the Kaya ratios derived on the fly from those
values. For years between anchors use "kaya project".`,
		Example: `  # World anchor years
  kaya values World

  # By region code, as CSV
  kaya values --code IND --output csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && code == "" {
				return errNoRegion
			}
			format, err := resolveOutputFormat(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			logging.FromContext(ctx).Debug().Ctx(ctx).Str("operation", "values").
				Strs("regions", args).Msg("querying projection values")

			diag := &kayadata.Diagnostics{}
			rows := kayadata.Default().TopDownValues(
				kayadata.RegionQuery{Names: args, Code: code}, diag)
			reportDiagnostics(cmd, diag)

			return renderKayaRows(cmd.OutOrStdout(), format, rows)
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "select a region by code instead of name")

	return cmd
}
