package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/logging"
	"github.com/smokifit/smokifit/internal/provider"
)

// newConfigureCmd creates the "configure" command. Without a
// subcommand it prints the active configuration; subcommands set the
// API key, page size and daily goal.
func newConfigureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Show or change smokifit settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			out := cmd.OutOrStdout()

			// First run: materialize the defaults on disk.
			if _, err := os.Stat(cfg.Path()); os.IsNotExist(err) {
				if err := cfg.Save(); err != nil {
					return fmt.Errorf("write default config: %w", err)
				}
				fmt.Fprintf(out, "Created %s\n\n", cfg.Path())
			}

			key := "(not set)"
			if cfg.APIKey != "" {
				key = "configured"
			}
			fmt.Fprintf(out, "Config file: %s\n", cfg.Path())
			fmt.Fprintf(out, "API key:     %s\n", key)
			fmt.Fprintf(out, "Page size:   %d\n", cfg.PageSize)
			fmt.Fprintf(out, "Daily goal:  %d kcal\n", cfg.DailyGoal)
			return nil
		},
	}

	cmd.AddCommand(newConfigureKeyCmd(), newConfigurePageSizeCmd(), newConfigureGoalCmd())
	return cmd
}

// newConfigureKeyCmd verifies an api-ninjas key against the dad-jokes
// endpoint before persisting it. A valid key earns a joke.
func newConfigureKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <api-key>",
		Short: "Set and verify the api-ninjas API key",
		Long: "Verify an API key against the api-ninjas service and store it for " +
			"future sessions. Get a free key at https://api-ninjas.com.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			client := provider.New(provider.DefaultBaseURL, cfg.APIKey, nil,
				logging.ComponentLogger(logger, "provider"))

			ok, joke, err := client.VerifyKey(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("verify API key: %w", err)
			}
			if !ok {
				return fmt.Errorf("invalid API key: the api-ninjas service rejected it")
			}

			cfg.APIKey = args[0]
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\nAPI key has been set.")
			fmt.Fprintln(out, "\nWanna listen to a joke?", joke)
			return nil
		},
	}
}

func newConfigurePageSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "page-size <n>",
		Short: "Set how many records each page shows (1 to 3)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("page size must be a number, got %q", args[0])
			}
			if size < config.MinPageSize || size > config.MaxPageSize {
				return fmt.Errorf("%w: got %d", config.ErrInvalidPageSize, size)
			}

			cfg := config.New()
			cfg.PageSize = size
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "\nPage size has been configured.")
			return nil
		},
	}
}

// newConfigureGoalCmd sets the default daily goal used to seed new
// ledger days. Today's goal changes through "tracker goal".
func newConfigureGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal <calories>",
		Short: "Set the default daily calorie goal for new days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := strconv.Atoi(args[0])
			if err != nil || goal <= 0 {
				return fmt.Errorf("%w: got %q", config.ErrInvalidDailyGoal, args[0])
			}

			cfg := config.New()
			cfg.DailyGoal = goal
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"\nGreat! Your daily calories goal has been changed to %d kcal.\n", goal)
			return nil
		},
	}
}
