package session

// Mode selects the record shape and the actions available in a browse
// session. It is fixed for the lifetime of a session.
type Mode string

// Valid session modes.
const (
	// ModeExercise browses exercise records and offers save/unsave.
	ModeExercise Mode = "exercise"
	// ModeNutrition browses nutrition records and offers eat.
	ModeNutrition Mode = "nutrition"
)

// DefaultServingSizeG is substituted when a nutrition record carries no
// usable serving size. Per-100g normalization divides by this value, so
// a missing serving size makes the record its own reference portion.
const DefaultServingSizeG = 100

// ExerciseRecord describes a single exercise as returned by the data
// provider or loaded back from the saved-exercises table.
type ExerciseRecord struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// NutritionRecord describes the nutrition facts of one food item.
// Numeric fields the provider omits decode to 0; ServingSizeG is
// normalized to DefaultServingSizeG when missing or non-positive.
type NutritionRecord struct {
	Name                string  `json:"name"`
	Calories            float64 `json:"calories"`
	ServingSizeG        float64 `json:"serving_size_g"`
	FatTotalG           float64 `json:"fat_total_g"`
	FatSaturatedG       float64 `json:"fat_saturated_g"`
	ProteinG            float64 `json:"protein_g"`
	SodiumMg            float64 `json:"sodium_mg"`
	PotassiumMg         float64 `json:"potassium_mg"`
	CholesterolMg       float64 `json:"cholesterol_mg"`
	CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
	FiberG              float64 `json:"fiber_g"`
	SugarG              float64 `json:"sugar_g"`
}

// EffectiveServingSizeG returns the serving size used for per-100g
// normalization, substituting the default for missing or non-positive
// values so the normalization factor is always finite.
func (r NutritionRecord) EffectiveServingSizeG() float64 {
	if r.ServingSizeG <= 0 {
		return DefaultServingSizeG
	}
	return r.ServingSizeG
}

// ResultSet is the finite, ordered, immutable sequence of records a
// session pages through. Exactly one of the two slices is populated,
// selected by Mode.
type ResultSet struct {
	Mode      Mode
	Exercises []ExerciseRecord
	Foods     []NutritionRecord
}

// NewExerciseResults wraps exercise records into a ResultSet.
func NewExerciseResults(records []ExerciseRecord) ResultSet {
	return ResultSet{Mode: ModeExercise, Exercises: records}
}

// NewNutritionResults wraps nutrition records into a ResultSet.
func NewNutritionResults(records []NutritionRecord) ResultSet {
	return ResultSet{Mode: ModeNutrition, Foods: records}
}

// Len returns the number of records in the set.
func (rs ResultSet) Len() int {
	if rs.Mode == ModeNutrition {
		return len(rs.Foods)
	}
	return len(rs.Exercises)
}
