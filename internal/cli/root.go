package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kayatools/kayadata/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the kaya CLI.
// It wires up logging, tracing, and the data subcommands (regions, data,
// fuel-mix, trends, values, project, factors, capacity, explore, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:     "kaya",
		Short:   "Kaya identity reference data explorer",
		Long:    "kaya: query curated population, GDP, energy, and CO2 emissions series and top-down projections",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().String("output", "", "output format: table, json, or csv (default from configuration)")
	cmd.PersistentFlags().Bool("quiet", false, "suppress data quality warnings")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		NewRegionsCmd(), NewDataCmd(), NewFuelMixCmd(),
		NewTrendsCmd(), NewValuesCmd(), NewProjectCmd(),
		NewFactorsCmd(), NewCapacityCmd(), NewExploreCmd(),
		newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # List every region in the historical table
  kaya regions

  # Historical Kaya series for the United States
  kaya data "United States"

  # The same series under purchasing power parity GDP
  kaya data "United States" --ppp

  # Latest fuel mix for the world, renewables collapsed into one category
  kaya fuel-mix World --collapse-renewables

  # Projection growth rates and anchor values
  kaya trends China
  kaya values China

  # Interpolated projection for an off-anchor year
  kaya project World --year 2037

  # Emissions factors and generation capacity reference tables
  kaya factors
  kaya capacity

  # Interactive explorer
  kaya explore Japan

  # Initialize configuration
  kaya config init`
