package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kayatools/kayadata/internal/config"
)

// newConfigCmd creates the config command group with configuration
// subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd())
	return cmd
}

// NewConfigInitCmd creates the config init command for writing a default
// configuration file.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at $KAYA_CONFIG,
or ~/.config/kaya/config.yaml when the variable is unset.`,
		Example: `  # Create the configuration file
  kaya config init

  # Overwrite an existing file
  kaya config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path()

			if !force {
				if _, err := os.Stat(path); err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			if err := config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigShowCmd creates the config show command printing the effective
// configuration after file and environment overlays.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  kaya config show
  kaya config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg := configFromCmd(cmd)
			if format == config.FormatJSON {
				return renderJSON(cmd.OutOrStdout(), cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
