package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/config"
)

// NewFactorsCmd creates the "factors" command printing the CO2 emissions
// factor reference table.
func NewFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "CO2 emissions factors for fossil fuels",
		Long: `Print the reference CO2 emissions factors used to convert fossil fuel
consumption into emissions, in million metric tons of CO2 per quad.`,
		Example: `  kaya factors
  kaya factors --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(cmd)
			if err != nil {
				return err
			}
			return renderFactors(cmd.OutOrStdout(), format, kayadata.EmissionsFactors())
		},
	}
}

// NewCapacityCmd creates the "capacity" command printing the generation
// capacity reference table.
func NewCapacityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity",
		Short: "Generation capacity per quad-year by technology",
		Long: `Print the reference electric generation capacity needed to supply one
quad per year by technology, derived from each technology's typical
capacity factor.`,
		Example: `  kaya capacity
  kaya capacity --output csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(cmd)
			if err != nil {
				return err
			}
			return renderCapacities(cmd.OutOrStdout(), format, kayadata.GenerationCapacities())
		},
	}
}

func renderFactors(w io.Writer, format string, factors []kayadata.EmissionsFactor) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, factors)
	case config.FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"fuel", "mmt_co2_per_quad"}); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
		for _, f := range factors {
			if err := cw.Write([]string{f.Fuel.String(), csvCell(f.MMTCO2PerQuad)}); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprint(tw, "FUEL\tMMT CO2/QUAD\n"); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, f := range factors {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", f.Fuel, formatCell(f.MMTCO2PerQuad, 2)); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		return tw.Flush()
	}
}

func renderCapacities(w io.Writer, format string, caps []kayadata.GenerationCapacity) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, caps)
	case config.FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"technology", "capacity_factor", "gw_per_quad_year"}); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
		for _, c := range caps {
			rec := []string{c.Technology, csvCell(c.CapacityFactor), csvCell(c.GWPerQuadYear)}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprint(tw, "TECHNOLOGY\tCAPACITY FACTOR\tGW/QUAD-YEAR\n"); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, c := range caps {
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
				c.Technology, formatCell(c.CapacityFactor, 2), formatCell(c.GWPerQuadYear, 1),
			); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		return tw.Flush()
	}
}
