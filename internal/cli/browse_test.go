package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokifit/smokifit/internal/session"
)

type scriptStore struct {
	saved    map[string]session.ExerciseRecord
	goal     int
	consumed float64
}

func newScriptStore(goal int) *scriptStore {
	return &scriptStore{saved: make(map[string]session.ExerciseRecord), goal: goal}
}

func (f *scriptStore) IsSaved(name string) (bool, error) {
	_, ok := f.saved[name]
	return ok, nil
}

func (f *scriptStore) SaveExercise(name string, record session.ExerciseRecord) error {
	f.saved[name] = record
	return nil
}

func (f *scriptStore) DeleteExercise(name string) error {
	delete(f.saved, name)
	return nil
}

func (f *scriptStore) ApplyCalories(delta float64) (bool, float64, error) {
	f.consumed += delta
	return f.consumed < float64(f.goal), f.consumed, nil
}

func (f *scriptStore) Goal() (int, error) { return f.goal, nil }

func browseScript(t *testing.T, st session.Store, rs session.ResultSet, pageSize int, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := runBrowse(strings.NewReader(input), &out, st, rs, pageSize)
	require.NoError(t, err)
	return out.String()
}

func TestRunBrowse_ExitsOnMenu(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults([]session.ExerciseRecord{{Name: "Squat"}})

	out := browseScript(t, st, rs, 1, "m\n")
	assert.Contains(t, out, "Page 1/1")
	assert.Contains(t, out, "Exercise Name: Squat")
}

func TestRunBrowse_ExitsOnInputEnd(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults([]session.ExerciseRecord{{Name: "Squat"}})

	var out bytes.Buffer
	err := runBrowse(strings.NewReader(""), &out, st, rs, 1)
	require.NoError(t, err)
}

func TestRunBrowse_NavigationMessages(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults([]session.ExerciseRecord{{Name: "A"}, {Name: "B"}})

	out := browseScript(t, st, rs, 1, "p\nn\nn\nm\n")
	assert.Contains(t, out, "Previous page doesn't exist.")
	assert.Contains(t, out, "Next page doesn't exist.")
	assert.Contains(t, out, "Page 2/2")
}

func TestRunBrowse_SaveAndUnsave(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults([]session.ExerciseRecord{{Name: "Deadlift"}})

	out := browseScript(t, st, rs, 1, "s\ns\nu\nu\nm\n")
	assert.Contains(t, out, "Exercise has been saved. Keep up the good work!")
	assert.Contains(t, out, "This exercise is already saved. Great choice!")
	assert.Contains(t, out, "Exercise has been unsaved. Adjusting your routine, I see!")
	assert.Contains(t, out, "This exercise is not saved. Keep track of your progress!")
	assert.Empty(t, st.saved)
}

func TestRunBrowse_EatOverGoal(t *testing.T) {
	st := newScriptStore(2000)
	st.consumed = 1800
	rs := session.NewNutritionResults([]session.NutritionRecord{
		{Name: "brisket", Calories: 250, ServingSizeG: 100},
	})

	out := browseScript(t, st, rs, 1, "e\ne\nm\n")
	assert.Contains(t, out, "250.0 calories added to daily intake.")
	assert.Contains(t, out, "You're 50.0 kcal over your goal!!")
	assert.Contains(t, out, "You've already added the food(s) in this page to daily intake.")
	assert.InDelta(t, 2050, st.consumed, 0.001)
}

func TestRunBrowse_EatUnderGoal(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewNutritionResults([]session.NutritionRecord{
		{Name: "apple", Calories: 52, ServingSizeG: 100},
	})

	out := browseScript(t, st, rs, 1, "e\nm\n")
	assert.Contains(t, out, "Keep it up!")
}

func TestRunBrowse_InvalidInputRecovers(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults([]session.ExerciseRecord{{Name: "Squat"}})

	out := browseScript(t, st, rs, 1, "x\nwhatever\nm\n")
	assert.Contains(t, out, "Invalid input. Let's stay on track!")
	assert.Contains(t, out, "Exercise Name: Squat")
}

func TestRunBrowse_ActionsOutsideModeAreInvalid(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults([]session.ExerciseRecord{{Name: "Squat"}})

	out := browseScript(t, st, rs, 1, "e\nm\n")
	assert.Contains(t, out, "Invalid input. Let's stay on track!")
}

func TestRunBrowse_RejectsBadPageSize(t *testing.T) {
	st := newScriptStore(2000)
	rs := session.NewExerciseResults(nil)

	var out bytes.Buffer
	err := runBrowse(strings.NewReader("m\n"), &out, st, rs, 4)
	require.ErrorIs(t, err, session.ErrPageSizeOutOfRange)
}
