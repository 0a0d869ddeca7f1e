package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/logging"
)

// setupLogging configures logging from cfg and the --debug flag, and stores
// the logger and a trace id in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		if err := cfg.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	lc := loggingCfg.ToLoggingConfig()
	lc.Output = cmd.ErrOrStderr()
	result := logging.NewLoggerWithPath(lc)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	if err := cfg.LoadErr(); err != nil {
		logger.Warn().
			Err(err).
			Str("config_path", cfg.Path()).
			Msg("failed to load config file, using defaults")
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.With().Str("trace_id", traceID).Logger().WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().
		Str("command", cmd.Name()).
		Str("trace_id", traceID).
		Str("config", cfg.Path()).
		Msg("command started")

	return result
}
