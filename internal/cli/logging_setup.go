package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kayatools/kayadata/internal/config"
	"github.com/kayatools/kayadata/internal/logging"
)

// configContextKey is the context key under which the loaded configuration
// is stashed for subcommands.
type configContextKey struct{}

// configFromCmd returns the configuration loaded during PersistentPreRunE,
// or fresh defaults when the command runs without the root setup (tests).
func configFromCmd(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configContextKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return config.New()
}

// setupLogging configures logging based on config file, environment, and CLI
// flags, and attaches the logger, trace ID, and configuration to the command
// context.
func setupLogging(cmd *cobra.Command) *logging.Result {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: using default configuration: %v\n", err)
		cfg = config.New()
	}

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	result := logging.New(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, configContextKey{}, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle when one was opened.
func cleanupLogging(logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
