package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/smokifit/smokifit/internal/session"
)

const (
	msgNoNextPage     = "\nNext page doesn't exist."
	msgNoPreviousPage = "\nPrevious page doesn't exist."
	msgAlreadySaved   = "\nThis exercise is already saved. Great choice!"
	msgSaved          = "\nExercise has been saved. Keep up the good work!"
	msgNotSaved       = "\nThis exercise is not saved. Keep track of your progress!"
	msgUnsaved        = "\nExercise has been unsaved. Adjusting your routine, I see!"
	msgAlreadyEaten   = "\nYou've already added the food(s) in this page to daily intake."
	msgInvalidInput   = "\nInvalid input. Let's stay on track!"
)

// runBrowse drives an interactive paging loop over a result set,
// reading single-letter commands from in until the user returns to the
// main menu or input ends.
func runBrowse(in io.Reader, out io.Writer, st session.Store, results session.ResultSet, pageSize int) error {
	sess, err := session.New(st, results, pageSize, logger)
	if err != nil {
		return err
	}

	r := newRenderer(out)
	scanner := bufio.NewScanner(in)
	for {
		r.RenderPage(sess.View())
		fmt.Fprint(out, "Enter: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, err := session.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, msgInvalidInput)
			continue
		}
		if cmd == session.CommandMenu {
			return nil
		}
		if err := dispatch(sess, cmd, out); err != nil {
			return err
		}
	}
}

// dispatch applies one browse command and prints its outcome.
func dispatch(sess *session.Session, cmd session.Command, out io.Writer) error {
	switch cmd {
	case session.CommandNext:
		if !sess.Next() {
			fmt.Fprintln(out, msgNoNextPage)
		}
	case session.CommandPrevious:
		if !sess.Previous() {
			fmt.Fprintln(out, msgNoPreviousPage)
		}
	case session.CommandSave:
		status, err := sess.Save()
		if err != nil {
			return err
		}
		printActionStatus(out, status, msgSaved, msgAlreadySaved)
	case session.CommandUnsave:
		status, err := sess.Unsave()
		if err != nil {
			return err
		}
		printActionStatus(out, status, msgUnsaved, msgNotSaved)
	case session.CommandEat:
		res, err := sess.Eat()
		if err != nil {
			return err
		}
		printEatResult(out, res)
	}
	return nil
}

func printActionStatus(out io.Writer, status session.ActionStatus, done, skipped string) {
	switch status {
	case session.StatusSaved, session.StatusUnsaved:
		fmt.Fprintln(out, done)
	case session.StatusAlreadySaved, session.StatusNotSaved:
		fmt.Fprintln(out, skipped)
	default:
		fmt.Fprintln(out, msgInvalidInput)
	}
}

func printEatResult(out io.Writer, res session.EatResult) {
	switch res.Status {
	case session.StatusEaten:
		dialogue := "Keep it up!"
		if !res.UnderGoal {
			dialogue = fmt.Sprintf("You're %.1f kcal over your goal!!", res.Total-float64(res.Goal))
		}
		fmt.Fprintf(out, "\n%.1f calories added to daily intake. %s\n", res.Calories, dialogue)
	case session.StatusAlreadyEaten:
		fmt.Fprintln(out, msgAlreadyEaten)
	default:
		fmt.Fprintln(out, msgInvalidInput)
	}
}
