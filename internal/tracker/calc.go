// Package tracker computes daily calorie needs with the
// Harris-Benedict equation.
package tracker

import (
	"errors"
	"fmt"
	"math"
)

// Gender selects the Harris-Benedict constant set.
type Gender string

// Supported genders for the BMR equation.
const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// WeightGoal adjusts the daily calorie suggestion.
type WeightGoal string

// Supported weight goals.
const (
	Gain     WeightGoal = "Gain"
	Lose     WeightGoal = "Lose"
	Maintain WeightGoal = "Maintain"
)

// goalAdjustment is the calorie delta applied for gain/lose goals.
const goalAdjustment = 500

// ErrUnknownGender rejects gender values outside the equation's domain.
var ErrUnknownGender = errors.New("gender must be Male or Female")

// Harris-Benedict coefficients.
const (
	maleBase     = 88.362
	maleWeight   = 13.397
	maleHeight   = 4.799
	maleAge      = 5.677
	femaleBase   = 447.593
	femaleWeight = 9.247
	femaleHeight = 3.098
	femaleAge    = 4.330
)

// ActivityLevel pairs a description with its BMR multiplier.
type ActivityLevel struct {
	Label  string
	Factor float64
}

// ActivityLevels lists the supported activity multipliers, sedentary
// first.
var ActivityLevels = []ActivityLevel{
	{Label: "Sedentary (little or no exercise)", Factor: 1.2},
	{Label: "Lightly active (1-3 days/week)", Factor: 1.375},
	{Label: "Moderately active (3-5 days/week)", Factor: 1.55},
	{Label: "Very active (6-7 days/week)", Factor: 1.725},
	{Label: "Extremely active (hard exercise & physical job or 2x training)", Factor: 1.9},
}

// BMR computes the basal metabolic rate in kcal/day for the given
// gender, age in years, weight in kilograms and height in centimeters.
func BMR(gender Gender, age int, weightKg, heightCm float64) (float64, error) {
	switch gender {
	case Male:
		return maleBase + maleWeight*weightKg + maleHeight*heightCm - maleAge*float64(age), nil
	case Female:
		return femaleBase + femaleWeight*weightKg + femaleHeight*heightCm - femaleAge*float64(age), nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrUnknownGender, gender)
	}
}

// DailyNeed scales a BMR by an activity factor and rounds to whole
// calories.
func DailyNeed(bmr, activityFactor float64) int {
	return int(math.Round(bmr * activityFactor))
}

// AdjustForGoal shifts a daily calorie need for the chosen weight goal:
// +500 to gain, -500 to lose, unchanged to maintain.
func AdjustForGoal(dailyNeed int, goal WeightGoal) int {
	switch goal {
	case Gain:
		return dailyNeed + goalAdjustment
	case Lose:
		return dailyNeed - goalAdjustment
	default:
		return dailyNeed
	}
}
