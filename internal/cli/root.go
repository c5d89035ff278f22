// Package cli wires the smokifit commands: search, browse, tracker,
// saves, history and configuration.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // set once per invocation in the root PreRun

// NewRootCmd creates the root Cobra command for the smokifit CLI and
// registers all subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logSetup *logging.Setup

	cmd := &cobra.Command{
		Use:     "smokifit",
		Short:   "SmokiFit - your personal fitness companion",
		Long: "SmokiFit: search exercises and nutrition facts, get advice on " +
			"what you eat, and track daily calories against your goal.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logSetup = setupLogging(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logSetup != nil {
				_ = logSetup.Close()
			}
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	cmd.AddCommand(
		newExerciseCmd(),
		newNutritionCmd(),
		newSavesCmd(),
		newHistoryCmd(),
		newTrackerCmd(),
		newConfigureCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Search beginner chest exercises and browse the results
  smokifit exercise --difficulty beginner --muscle chest

  # Look up nutrition facts (multiple foods work too)
  smokifit nutrition 1lb brisket and fries

  # Today's calorie counter
  smokifit tracker`

// setupLogging builds the package logger from config and the --debug
// flag. The returned setup owns the optional log file handle.
func setupLogging(cmd *cobra.Command) *logging.Setup {
	cfg := config.New()
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	setup := logging.New(logCfg)
	logger = logging.ComponentLogger(setup.Logger, "cli")
	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return setup
}
