package cli

import (
	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/logging"
)

// NewRegionsCmd creates the "regions" command listing every distinct region
// in the historical table.
func NewRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions in the historical table",
		Long: `List every distinct region covered by the historical Kaya series,
in the order regions first appear in the table.`,
		Example: `  # Plain list
  kaya regions

  # As JSON
  kaya regions --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(cmd)
			if err != nil {
				return err
			}

			regions := kayadata.Default().Regions()
			logging.FromContext(cmd.Context()).Debug().Ctx(cmd.Context()).
				Int("region_count", len(regions)).Msg("listing regions")

			return renderRegionList(cmd.OutOrStdout(), format, regions)
		},
	}
}
