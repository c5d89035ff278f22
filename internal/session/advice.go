package session

import "strings"

// Advice thresholds, applied to per-page aggregate totals. These are a
// behavioral contract and must not be tuned independently of the advice
// strings below.
const (
	adviceLowCalories  = 100
	adviceHighCalories = 300
	adviceFatMin       = 10
	adviceFatMax       = 20
	adviceProteinMin   = 5
	adviceProteinMax   = 20
	adviceSugarMax     = 10
)

const (
	adviceLow = "Low-calorie: Suitable for a healthy diet. " +
		"Consider incorporating a variety of nutrient-dense foods."
	adviceBalanced = "Moderate-calorie: Balanced nutritional content. " +
		"Enjoy in moderation as part of a well-rounded diet."
	adviceOptimize    = "Moderate-calorie: Consider optimizing your nutritional balance."
	adviceMoreFat     = " Increase healthy fats for sustained energy."
	adviceLessFat     = " Limit saturated fats for heart health."
	adviceMoreProtein = " Include more protein sources for muscle maintenance."
	adviceLessSugar   = " Be mindful of added sugars for overall well-being."
	adviceHigh        = "High-calorie: Consider consuming in moderation. " +
		"Check nutritional values for a balanced and varied diet."
	adviceMindfulPrefix = "\nBe mindful of "
	adviceMindfulSuffix = ". Small amount occasionally can be okay, " +
		"but try to focus on a balanced diet overall."
)

// Advise maps a page aggregate to a human-readable advice string.
// Pure function over the aggregate totals; per-record values never
// enter the comparison.
func Advise(agg PageAggregate) string {
	switch {
	case agg.Calories < adviceLowCalories:
		return adviceLow
	case agg.Calories <= adviceHighCalories:
		return adviseModerate(agg)
	default:
		var b strings.Builder
		b.WriteString(adviceHigh)
		appendMindfulWarning(&b, agg)
		return b.String()
	}
}

// adviseModerate handles the 100-300 kcal band: either the balanced
// message, or the optimization message plus every applicable nudge.
func adviseModerate(agg PageAggregate) string {
	balanced := agg.Fat >= adviceFatMin && agg.Fat <= adviceFatMax &&
		agg.Protein >= adviceProteinMin && agg.Protein <= adviceProteinMax &&
		agg.Sugar <= adviceSugarMax
	if balanced {
		return adviceBalanced
	}

	var b strings.Builder
	b.WriteString(adviceOptimize)
	if agg.Fat < adviceFatMin {
		b.WriteString(adviceMoreFat)
	} else if agg.Fat > adviceFatMax {
		b.WriteString(adviceLessFat)
	}
	if agg.Protein < adviceProteinMin {
		b.WriteString(adviceMoreProtein)
	}
	if agg.Sugar > adviceSugarMax {
		b.WriteString(adviceLessSugar)
	}
	appendMindfulWarning(&b, agg)
	return b.String()
}

func appendMindfulWarning(b *strings.Builder, agg PageAggregate) {
	if !agg.ServingSizeOK {
		b.WriteString(adviceMindfulPrefix)
		b.WriteString(agg.MindfulFood)
		b.WriteString(adviceMindfulSuffix)
	}
}
