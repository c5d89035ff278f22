package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/session"
)

// newHistoryCmd creates the "history" command for browsing recently
// searched foods. History pages behave like fresh nutrition results,
// advice and eat included.
func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse your food search history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			records, err := st.History()
			if err != nil {
				return fmt.Errorf("load food history: %w", err)
			}

			return runBrowse(cmd.InOrStdin(), cmd.OutOrStdout(), st,
				session.NewNutritionResults(records), cfg.PageSize)
		},
	}

	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the food search history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok := confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
				"\nAre you sure you want to clear the search history? (y/n): ")
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

			if err := st.ClearHistory(); err != nil {
				return fmt.Errorf("clear food history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History has been cleared.")
			return nil
		},
	}
}
