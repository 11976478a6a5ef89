package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata"
	"github.com/kayatools/kayadata/internal/logging"
	"github.com/kayatools/kayadata/internal/tui"
)

// NewExploreCmd creates the "explore" command launching the interactive
// dataset explorer.
func NewExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [region]",
		Short: "Interactive dataset explorer",
		Long: `Browse the dataset in an interactive terminal view: page through each
region's historical series, toggle the GDP convention, and switch to the
latest-year fuel mix.`,
		Example: `  # Start on the first region
  kaya explore

  # Start on a specific region
  kaya explore Japan`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("explore requires an interactive terminal (try the data commands instead)")
			}

			region := ""
			if len(args) > 0 {
				region = args[0]
			}

			ctx := cmd.Context()
			model, err := tui.NewExploreModel(ctx, kayadata.Default(), region)
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug().Ctx(ctx).Str("operation", "explore").
				Str("region", model.Region()).Msg("starting explorer")

			p := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running explorer: %w", err)
			}
			return nil
		},
	}
}
