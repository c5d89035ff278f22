package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smokifit/smokifit/internal/config"
	"github.com/smokifit/smokifit/internal/store"
	"github.com/smokifit/smokifit/internal/tracker"
)

// newTrackerCmd creates the "tracker" command. Without a subcommand it
// prints the daily calorie counter; subcommands manage the ledger and
// calculate intake needs.
func newTrackerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Track daily calories against your goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(st *store.Store) error {
				consumed, err := st.Consumed()
				if err != nil {
					return fmt.Errorf("read daily calories: %w", err)
				}
				goal, err := st.Goal()
				if err != nil {
					return fmt.Errorf("read calorie goal: %w", err)
				}
				newRenderer(cmd.OutOrStdout()).RenderCounter(consumed, goal)
				return nil
			})
		},
	}

	cmd.AddCommand(
		newTrackerHistoryCmd(),
		newTrackerGoalCmd(),
		newTrackerAddCmd(),
		newTrackerSubtractCmd(),
		newTrackerCalcCmd(),
	)
	return cmd
}

// withStore opens the user database, runs fn and closes it again.
func withStore(fn func(*store.Store) error) error {
	cfg := config.New()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func newTrackerHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the last 7 days of consumption and goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(st *store.Store) error {
				entries, err := st.TrackerHistory()
				if err != nil {
					return fmt.Errorf("read tracker history: %w", err)
				}
				newRenderer(cmd.OutOrStdout()).RenderTrackerHistory(entries)
				return nil
			})
		},
	}
}

func newTrackerGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal <calories>",
		Short: "Change today's calorie intake goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := strconv.Atoi(args[0])
			if err != nil || goal <= 0 {
				return fmt.Errorf("goal must be a positive whole number, got %q", args[0])
			}
			return withStore(func(st *store.Store) error {
				if err := st.SetGoal(goal); err != nil {
					return fmt.Errorf("set calorie goal: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"\nGreat! Your daily calories goal has been changed to %d kcal.\n", goal)
				return nil
			})
		},
	}
}

func newTrackerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <calories>",
		Short: "Add calories to today's intake",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return adjustCalories(cmd, args[0], false) },
	}
}

func newTrackerSubtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subtract <calories>",
		Short: "Subtract calories from today's intake",
		Args:  cobra.ExactArgs(1),
		RunE:  func(cmd *cobra.Command, args []string) error { return adjustCalories(cmd, args[0], true) },
	}
}

func adjustCalories(cmd *cobra.Command, arg string, subtract bool) error {
	value, err := strconv.Atoi(arg)
	if err != nil || value < 0 {
		return fmt.Errorf("calories must be a whole number, got %q", arg)
	}
	delta := float64(value)
	verb := "added to"
	if subtract {
		delta = -delta
		verb = "subtracted from"
	}
	return withStore(func(st *store.Store) error {
		if _, _, err := st.ApplyCalories(delta); err != nil {
			return fmt.Errorf("update daily calories: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nGot it, %d calories %s daily intake.\n", value, verb)
		return nil
	})
}

// newTrackerCalcCmd creates the interactive calorie intake calculator.
// It walks through gender, age, weight, height, activity level and
// weight goal, then offers to store the result as the daily goal.
func newTrackerCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Calculate your daily calorie needs",
		Long: "Calculate daily calorie needs from gender, age, weight, height and " +
			"activity level using the Harris-Benedict equation, adjusted for a " +
			"gain, lose or maintain goal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			genderChoice, ok := promptChoice(out, scanner, "\nSELECT GENDER",
				[]string{string(tracker.Male), string(tracker.Female)})
			if !ok {
				return nil
			}
			age, ok := promptInt(out, scanner, "\nEnter your age: ")
			if !ok {
				return nil
			}
			weight, ok := promptFloat(out, scanner, "\nEnter your weight in kg: ")
			if !ok {
				return nil
			}
			height, ok := promptFloat(out, scanner, "\nEnter your height in cm: ")
			if !ok {
				return nil
			}

			bmr, err := tracker.BMR(tracker.Gender(genderChoice), age, weight, height)
			if err != nil {
				return err
			}

			labels := make([]string, len(tracker.ActivityLevels))
			for i, level := range tracker.ActivityLevels {
				labels[i] = level.Label
			}
			activityChoice, ok := promptChoice(out, scanner, "\nSELECT ACTIVITY LEVEL", labels)
			if !ok {
				return nil
			}
			var factor float64
			for _, level := range tracker.ActivityLevels {
				if level.Label == activityChoice {
					factor = level.Factor
				}
			}

			need := tracker.DailyNeed(bmr, factor)
			fmt.Fprintf(out, "Your estimated daily calories need is %d.", need)

			goalChoice, ok := promptChoice(out, scanner, "\nSELECT WEIGHT GOAL",
				[]string{string(tracker.Gain), string(tracker.Lose), string(tracker.Maintain)})
			if !ok {
				return nil
			}
			need = tracker.AdjustForGoal(need, tracker.WeightGoal(goalChoice))
			switch tracker.WeightGoal(goalChoice) {
			case tracker.Gain:
				fmt.Fprintf(out, "\nTo gain weight, aim for a daily caloric intake of approximately %d kcal.\n", need)
			case tracker.Lose:
				fmt.Fprintf(out, "\nTo lose weight, aim for a daily caloric intake of approximately %d kcal.\n", need)
			default:
				fmt.Fprintln(out, "\nYour calculated calorie needs are suitable for maintaining your current weight. "+
					"Consume calories around this amount to stay in balance.")
			}

			prompt := fmt.Sprintf("\nWould you like to set %d kcal as your daily calories goal? (y/n): ", need)
			update, ok := promptYesNo(out, scanner, prompt)
			if !ok {
				return nil
			}
			if !update {
				fmt.Fprintln(out, "\nNo problem! You can always adjust your daily calories goal later.")
				return nil
			}
			return withStore(func(st *store.Store) error {
				if err := st.SetGoal(need); err != nil {
					return fmt.Errorf("set calorie goal: %w", err)
				}
				fmt.Fprintf(out, "\nGreat! Your daily calories goal has been changed to %d kcal.\n", need)
				return nil
			})
		},
	}
}
