package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Page size limits. The renderer shows at most three records at once,
// so a session never pages wider than that.
const (
	MinPageSize = 1
	MaxPageSize = 3
)

// ErrPageSizeOutOfRange rejects page sizes outside [MinPageSize, MaxPageSize].
var ErrPageSizeOutOfRange = errors.New("page size must be between 1 and 3")

// Store is the persistence surface a session mutates. The session never
// opens, migrates, or closes the store; it is handed a ready instance.
type Store interface {
	// IsSaved reports whether an exercise is already persisted.
	IsSaved(name string) (bool, error)
	// SaveExercise persists one exercise record under its name.
	SaveExercise(name string, record ExerciseRecord) error
	// DeleteExercise removes a saved exercise.
	DeleteExercise(name string) error
	// ApplyCalories adds delta to today's ledger and reports whether
	// the new total is still under the daily goal, plus the total.
	ApplyCalories(delta float64) (bool, float64, error)
	// Goal returns the current daily calorie goal.
	Goal() (int, error)
}

// ActionStatus is the outcome of a page-scoped mutating action.
type ActionStatus string

// Action outcomes. NotApplicable covers actions issued in the wrong
// mode or on an empty page; callers render it as invalid input.
const (
	StatusSaved         ActionStatus = "saved"
	StatusAlreadySaved  ActionStatus = "already_saved"
	StatusUnsaved       ActionStatus = "unsaved"
	StatusNotSaved      ActionStatus = "not_saved"
	StatusEaten         ActionStatus = "eaten"
	StatusAlreadyEaten  ActionStatus = "already_eaten"
	StatusNotApplicable ActionStatus = "not_applicable"
)

// EatResult reports the outcome of applying a page's calories to the
// daily ledger. Calories, UnderGoal, Total and Goal are meaningful only
// when Status is StatusEaten.
type EatResult struct {
	Status    ActionStatus
	Calories  float64
	UnderGoal bool
	Total     float64
	Goal      int
}

// View is everything the renderer needs for the current page: the
// records, the nutrition aggregate and advice (suppressed once the page
// has been eaten), and the commands legal in the current state.
type View struct {
	Mode       Mode
	Page       int
	TotalPages int
	Exercises  []ExerciseRecord
	Foods      []NutritionRecord

	// Eaten reports whether this page's calories are already in the
	// ledger. Aggregate and Advice are zero-valued when it is true.
	Eaten     bool
	Aggregate PageAggregate
	Advice    string

	Commands []Command
}

// Session owns the state of one browse session: the immutable result
// set, the cursor, and the set of pages already eaten. It is not safe
// for concurrent use; the command loop is strictly synchronous.
type Session struct {
	store       Store
	results     ResultSet
	pageSize    int
	currentPage int
	totalPages  int
	eaten       map[int]struct{}
	logger      zerolog.Logger
}

// New starts a session over results at page 1 with an empty eaten set.
func New(store Store, results ResultSet, pageSize int, logger zerolog.Logger) (*Session, error) {
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: got %d", ErrPageSizeOutOfRange, pageSize)
	}
	s := &Session{
		store:       store,
		results:     results,
		pageSize:    pageSize,
		currentPage: 1,
		totalPages:  TotalPages(results.Len(), pageSize),
		eaten:       make(map[int]struct{}),
		logger:      logger,
	}
	s.logger.Debug().
		Str("mode", string(results.Mode)).
		Int("records", results.Len()).
		Int("page_size", pageSize).
		Int("total_pages", s.totalPages).
		Msg("session started")
	return s, nil
}

// TotalPages returns ceil(count/pageSize), floored at 1 so an empty
// result set still yields one renderable "no results" page.
func TotalPages(count, pageSize int) int {
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.results.Mode }

// CurrentPage returns the 1-based cursor position.
func (s *Session) CurrentPage() int { return s.currentPage }

// TotalPages returns the page count of the result set.
func (s *Session) TotalPages() int { return s.totalPages }

// Next advances the cursor and reports whether it moved. On the last
// page it is a no-op returning false.
func (s *Session) Next() bool {
	if s.currentPage >= s.totalPages {
		return false
	}
	s.currentPage++
	return true
}

// Previous moves the cursor back and reports whether it moved. On the
// first page it is a no-op returning false.
func (s *Session) Previous() bool {
	if s.currentPage <= 1 {
		return false
	}
	s.currentPage--
	return true
}

// Save persists the current page's actionable exercise. Outside
// exercise mode or on an empty page it is a no-op; an exercise that is
// already saved reports StatusAlreadySaved without touching the store.
func (s *Session) Save() (ActionStatus, error) {
	rec, ok := s.actionableExercise()
	if !ok {
		return StatusNotApplicable, nil
	}
	saved, err := s.store.IsSaved(rec.Name)
	if err != nil {
		return "", fmt.Errorf("check saved state: %w", err)
	}
	if saved {
		return StatusAlreadySaved, nil
	}
	if err := s.store.SaveExercise(rec.Name, rec); err != nil {
		return "", fmt.Errorf("save exercise: %w", err)
	}
	s.logger.Debug().Str("exercise", rec.Name).Msg("exercise saved")
	return StatusSaved, nil
}

// Unsave deletes the current page's actionable exercise from the store.
// An exercise that was never saved reports StatusNotSaved.
func (s *Session) Unsave() (ActionStatus, error) {
	rec, ok := s.actionableExercise()
	if !ok {
		return StatusNotApplicable, nil
	}
	saved, err := s.store.IsSaved(rec.Name)
	if err != nil {
		return "", fmt.Errorf("check saved state: %w", err)
	}
	if !saved {
		return StatusNotSaved, nil
	}
	if err := s.store.DeleteExercise(rec.Name); err != nil {
		return "", fmt.Errorf("delete exercise: %w", err)
	}
	s.logger.Debug().Str("exercise", rec.Name).Msg("exercise unsaved")
	return StatusUnsaved, nil
}

// Eat applies the current page's aggregate calories to the daily ledger
// exactly once per page per session. A second Eat on the same page
// reports StatusAlreadyEaten and leaves the ledger untouched.
func (s *Session) Eat() (EatResult, error) {
	if s.results.Mode != ModeNutrition || len(s.pageFoods()) == 0 {
		return EatResult{Status: StatusNotApplicable}, nil
	}
	if s.isEaten(s.currentPage) {
		return EatResult{Status: StatusAlreadyEaten}, nil
	}

	agg := AggregatePage(s.pageFoods())
	under, total, err := s.store.ApplyCalories(agg.Calories)
	if err != nil {
		return EatResult{}, fmt.Errorf("apply calories: %w", err)
	}
	goal, err := s.store.Goal()
	if err != nil {
		return EatResult{}, fmt.Errorf("read goal: %w", err)
	}

	s.eaten[s.currentPage] = struct{}{}
	s.logger.Debug().
		Int("page", s.currentPage).
		Float64("calories", agg.Calories).
		Float64("total", total).
		Msg("page calories applied")

	return EatResult{
		Status:    StatusEaten,
		Calories:  agg.Calories,
		UnderGoal: under,
		Total:     total,
		Goal:      goal,
	}, nil
}

// View builds the render model for the current page. The nutrition
// aggregate and advice are recomputed on every call and omitted once
// the page is eaten: eating materially changes what the advice would be
// about, so it is surfaced once per page only.
func (s *Session) View() View {
	v := View{
		Mode:       s.results.Mode,
		Page:       s.currentPage,
		TotalPages: s.totalPages,
		Eaten:      s.isEaten(s.currentPage),
	}

	switch s.results.Mode {
	case ModeNutrition:
		v.Foods = s.pageFoods()
		if len(v.Foods) > 0 && !v.Eaten {
			v.Aggregate = AggregatePage(v.Foods)
			v.Advice = Advise(v.Aggregate)
		}
	case ModeExercise:
		v.Exercises = s.pageExercises()
	}

	v.Commands = s.LegalCommands()
	return v
}

// LegalCommands returns the commands valid in the current state, in
// render order. Navigation is offered only where it would move, save or
// unsave only for the actionable exercise (whichever applies), and eat
// only for nutrition pages not yet eaten.
func (s *Session) LegalCommands() []Command {
	var cmds []Command

	if s.currentPage < s.totalPages {
		cmds = append(cmds, CommandNext)
	}
	if s.currentPage > 1 {
		cmds = append(cmds, CommandPrevious)
	}

	switch s.results.Mode {
	case ModeExercise:
		if rec, ok := s.actionableExercise(); ok {
			saved, err := s.store.IsSaved(rec.Name)
			switch {
			case err != nil:
				// Offer neither action rather than a misleading one.
				s.logger.Warn().Err(err).Str("exercise", rec.Name).
					Msg("saved-state lookup failed")
			case saved:
				cmds = append(cmds, CommandUnsave)
			default:
				cmds = append(cmds, CommandSave)
			}
		}
	case ModeNutrition:
		if len(s.pageFoods()) > 0 && !s.isEaten(s.currentPage) {
			cmds = append(cmds, CommandEat)
		}
	}

	return append(cmds, CommandMenu)
}

func (s *Session) isEaten(page int) bool {
	_, ok := s.eaten[page]
	return ok
}

// pageBounds returns the half-open record range of the current page.
func (s *Session) pageBounds() (int, int) {
	start := (s.currentPage - 1) * s.pageSize
	end := start + s.pageSize
	if n := s.results.Len(); end > n {
		end = n
	}
	if start > s.results.Len() {
		start = s.results.Len()
	}
	return start, end
}

func (s *Session) pageExercises() []ExerciseRecord {
	if s.results.Mode != ModeExercise {
		return nil
	}
	start, end := s.pageBounds()
	return s.results.Exercises[start:end]
}

func (s *Session) pageFoods() []NutritionRecord {
	if s.results.Mode != ModeNutrition {
		return nil
	}
	start, end := s.pageBounds()
	return s.results.Foods[start:end]
}

// actionableExercise returns the exercise save/unsave acts on: the last
// record of the current page. False when outside exercise mode or when
// the page is empty.
func (s *Session) actionableExercise() (ExerciseRecord, bool) {
	page := s.pageExercises()
	if len(page) == 0 {
		return ExerciseRecord{}, false
	}
	return page[len(page)-1], true
}
