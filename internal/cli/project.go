package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/logging"
)

// projectParams holds the parameters for the project command execution.
type projectParams struct {
	year int
	code string
}

// NewProjectCmd creates the "project" command interpolating top-down
// projections to an arbitrary year.
func NewProjectCmd() *cobra.Command {
	var params projectParams

	cmd := &cobra.Command{
		Use:   "project <region>... --year N",
		Short: "Interpolate top-down projections to a year",
		Long: `Interpolate each requested region's projected population, GDP, energy,
and CO2 to the given year, linearly between that region's stored anchor
years, and derive the Kaya ratios from the interpolated values.

Years outside the projection table's overall span are an error. A region
whose own anchors do not cover the year reports missing values.`,
		Example: projectCmdExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeProject(cmd, args, params)
		},
	}

	cmd.Flags().IntVar(&params.year, "year", 0, "target year for the interpolation")
	cmd.Flags().StringVar(&params.code, "code", "", "select a region by code instead of name")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

const projectCmdExample = `  # World at an off-anchor year
  kaya project World --year 2037

  # Several regions at once
  kaya project China India --year 2042

  # By region code
  kaya project --code BRA --year 2025`

// executeProject runs the projection interpolation for the "project" command.
func executeProject(cmd *cobra.Command, args []string, params projectParams) error {
	if len(args) == 0 && params.code == "" {
		return errNoRegion
	}

	format, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logging.FromContext(ctx).Debug().Ctx(ctx).Str("operation", "project").
		Strs("regions", args).Int("year", params.year).Msg("interpolating projection")

	diag := &kayadata.Diagnostics{}
	rows, err := kayadata.Default().ProjectTopDown(
		kayadata.RegionQuery{Names: args, Code: params.code}, params.year, diag)
	if err != nil {
		return fmt.Errorf("projecting to %d: %w", params.year, err)
	}
	reportDiagnostics(cmd, diag)

	return renderKayaRows(cmd.OutOrStdout(), format, rows)
}
