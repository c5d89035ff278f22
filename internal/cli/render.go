package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/smokifit/smokifit/internal/session"
	"github.com/smokifit/smokifit/internal/store"
)

const noResultsMessage = "No results found. Keep pushing!"

// commandLabels maps browse commands to the help-line text shown under
// each page.
var commandLabels = map[session.Command]string{
	session.CommandNext:     "n : next",
	session.CommandPrevious: "p : previous",
	session.CommandSave:     "s : save",
	session.CommandUnsave:   "u : unsave",
	session.CommandEat:      "e : eat(add calorie to daily intake)",
	session.CommandMenu:     "m : main menu",
}

// renderer writes page views and tracker output. Styled output is used
// when the destination is a terminal, plain text otherwise.
type renderer struct {
	w      io.Writer
	styled bool
	p      *message.Printer
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{
		w:      w,
		styled: isWriterTerminal(w),
		p:      message.NewPrinter(language.English),
	}
}

// isWriterTerminal reports whether w is an interactive terminal.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// title renders a bold heading when styled output is active.
func (r *renderer) title(s string) string {
	if !r.styled {
		return s
	}
	return lipgloss.NewStyle().Bold(true).Render(s)
}

// accent renders secondary emphasis when styled output is active.
func (r *renderer) accent(s string) string {
	if !r.styled {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(s)
}

// RenderPage writes one page of a browse session: header, records,
// nutrition summary and advice (when present), and the help line of
// legal commands.
func (r *renderer) RenderPage(v session.View) {
	fmt.Fprintf(r.w, "\n%s\n", r.title(fmt.Sprintf("Page %d/%d", v.Page, v.TotalPages)))

	switch v.Mode {
	case session.ModeExercise:
		if len(v.Exercises) == 0 {
			fmt.Fprintln(r.w, noResultsMessage)
			break
		}
		for _, rec := range v.Exercises {
			r.renderExercise(rec)
		}
	case session.ModeNutrition:
		if len(v.Foods) == 0 {
			fmt.Fprintln(r.w, noResultsMessage)
			break
		}
		for _, rec := range v.Foods {
			r.renderNutrition(rec)
		}
		if v.Advice != "" {
			fmt.Fprintf(r.w, "\n%s\n%s\n",
				r.accent("My advice on this page's nutrition:"), v.Advice)
		}
	}

	r.renderCommands(v.Commands)
}

func (r *renderer) renderExercise(rec session.ExerciseRecord) {
	fmt.Fprintf(r.w, "\n%s\n", r.accent("Let's dive into this exercise!"))
	fmt.Fprintf(r.w, "Exercise Name: %s\n", rec.Name)
	fmt.Fprintf(r.w, "Type: %s\n", rec.Type)
	fmt.Fprintf(r.w, "Muscle: %s\n", rec.Muscle)
	fmt.Fprintf(r.w, "Equipment: %s\n", rec.Equipment)
	fmt.Fprintf(r.w, "Difficulty: %s\n", rec.Difficulty)
	fmt.Fprintf(r.w, "Instructions: %s\n", rec.Instructions)
}

func (r *renderer) renderNutrition(rec session.NutritionRecord) {
	fmt.Fprintf(r.w, "\n%s\n", r.accent("Nutrition Information:"))
	fmt.Fprintf(r.w, "Name: %s\n", rec.Name)
	r.p.Fprintf(r.w, "Calories: %.1f\n", rec.Calories)
	r.p.Fprintf(r.w, "Serving Size: %.1fg\n", rec.EffectiveServingSizeG())
	r.p.Fprintf(r.w, "Total Fat: %.1fg\n", rec.FatTotalG)
	r.p.Fprintf(r.w, "Saturated Fat: %.1fg\n", rec.FatSaturatedG)
	r.p.Fprintf(r.w, "Protein: %.1fg\n", rec.ProteinG)
	r.p.Fprintf(r.w, "Sodium: %.1fmg\n", rec.SodiumMg)
	r.p.Fprintf(r.w, "Potassium: %.1fmg\n", rec.PotassiumMg)
	r.p.Fprintf(r.w, "Cholesterol: %.1fmg\n", rec.CholesterolMg)
	r.p.Fprintf(r.w, "Total Carbohydrates: %.1fg\n", rec.CarbohydratesTotalG)
	r.p.Fprintf(r.w, "Fiber: %.1fg\n", rec.FiberG)
	r.p.Fprintf(r.w, "Sugar: %.1fg\n", rec.SugarG)
}

// renderCommands prints the legal commands, navigation on the first
// line and actions on their own lines below it.
func (r *renderer) renderCommands(cmds []session.Command) {
	var nav, rest []string
	for _, cmd := range cmds {
		switch cmd {
		case session.CommandNext, session.CommandPrevious:
			nav = append(nav, commandLabels[cmd])
		default:
			rest = append(rest, commandLabels[cmd])
		}
	}
	lines := rest
	if len(nav) > 0 {
		lines = append([]string{strings.Join(nav, ",     ")}, rest...)
	}
	fmt.Fprintf(r.w, "\n%s\n", strings.Join(lines, "\n"))
}

// RenderCounter writes the daily calorie counter line.
func (r *renderer) RenderCounter(consumed float64, goal int) {
	r.p.Fprintf(r.w, "\nDaily Calories: %.1f/%d kcal\n", consumed, goal)
}

// RenderTrackerHistory writes the retained calorie ledger as a table.
func (r *renderer) RenderTrackerHistory(entries []store.DayEntry) {
	fmt.Fprintf(r.w, "\n%s\n", r.title("Last 7 days history:"))
	fmt.Fprintf(r.w, "%-13s%-17s%s\n", "Date", "Consumed (kcal)", "Goal (kcal)")
	for _, entry := range entries {
		r.p.Fprintf(r.w, "%-13s%-17.1f%d\n", entry.Date, entry.Consumed, entry.Goal)
	}
}
