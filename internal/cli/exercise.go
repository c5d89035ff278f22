package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/provider"
	"github.com/smokifit/smokifit/internal/session"
)

// newExerciseCmd creates the "exercise" command. It searches the
// exercise API with the given filters and opens a browse session over
// the results.
func newExerciseCmd() *cobra.Command {
	var query provider.ExerciseQuery

	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Search exercises and browse the results",
		Long: "Search exercises by name, type, muscle or difficulty. Results are " +
			"browsed page by page; exercises can be saved for later.",
		Example: `  smokifit exercise --name "bench press"
  smokifit exercise --muscle biceps --difficulty beginner`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()
			client, err := newProvider(cfg)
			if err != nil {
				return err
			}

			records, err := client.SearchExercises(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("search exercises: %w", err)
			}
			logger.Debug().Int("results", len(records)).Msg("exercise search done")

			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			return runBrowse(cmd.InOrStdin(), cmd.OutOrStdout(), st,
				session.NewExerciseResults(records), cfg.PageSize)
		},
	}

	cmd.Flags().StringVar(&query.Name, "name", "", "partial exercise name to match")
	cmd.Flags().StringVar(&query.Type, "type", "", "exercise type (cardio, powerlifting, strength, stretching)")
	cmd.Flags().StringVar(&query.Muscle, "muscle", "", "target muscle (biceps, chest, glutes, ...)")
	cmd.Flags().StringVar(&query.Difficulty, "difficulty", "", "difficulty (beginner, intermediate, expert)")

	return cmd
}
