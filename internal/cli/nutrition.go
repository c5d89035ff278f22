package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/session"
)

// newNutritionCmd creates the "nutrition" command. It looks up
// nutrition facts for a free-text food query, records the results in
// the food history, and opens a browse session with per-page advice.
func newNutritionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nutrition <food query>",
		Short: "Look up nutrition facts and browse them with advice",
		Long: "Look up nutrition facts for foods described in plain text, for " +
			"example '1lb brisket and fries'. Browsed pages show a nutrition " +
			"summary with advice, and calories can be added to the daily intake.",
		Example: `  smokifit nutrition 100g chicken breast
  smokifit nutrition 1lb brisket and fries`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			client, err := newProvider(cfg)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			records, err := client.SearchNutrition(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search nutrition: %w", err)
			}
			logger.Debug().Str("query", query).Int("results", len(records)).
				Msg("nutrition search done")

			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.AddHistory(records); err != nil {
				logger.Warn().Err(err).Msg("recording food history failed")
			}

			return runBrowse(cmd.InOrStdin(), cmd.OutOrStdout(), st,
				session.NewNutritionResults(records), cfg.PageSize)
		},
	}
}
