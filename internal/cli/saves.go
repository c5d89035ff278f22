package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/session"
)

// newSavesCmd creates the "saves" command for browsing saved
// exercises, with a "clear" subcommand that removes them all.
func newSavesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Browse your saved exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.ListSaved()
			if err != nil {
				return fmt.Errorf("list saved exercises: %w", err)
			}

			return runBrowse(cmd.InOrStdin(), cmd.OutOrStdout(), st,
				session.NewExerciseResults(records), cfg.PageSize)
		},
	}

	cmd.AddCommand(newSavesClearCmd())
	return cmd
}

func newSavesClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all saved exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok := confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
				"\nAre you sure you want to remove all saved exercises? (y/n): ")
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Operation canceled.")
				return nil
			}

			cfg := config.New()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.RemoveAllSaved(); err != nil {
				return fmt.Errorf("remove saved exercises: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All saves have been removed.")
			return nil
		},
	}
}
