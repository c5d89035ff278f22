package session

// Mindful-food thresholds: a record served in less than mindfulServingG
// grams whose per-100g calories exceed mindfulCalories is flagged as a
// food to be mindful of.
const (
	mindfulServingG  = 100
	mindfulCalories  = 300
	per100gReference = 100
)

// PageAggregate holds the nutrition totals of one page, each value
// normalized to a per-100g basis and summed across the page's records.
// It is derived state: recomputed on every render, never stored.
type PageAggregate struct {
	Calories float64
	Fat      float64
	Protein  float64
	Sugar    float64

	// ServingSizeOK is false once at least one calorie-dense
	// small-serving item has been seen on the page.
	ServingSizeOK bool

	// MindfulFood names the flagged item(s), joined with " and ".
	MindfulFood string
}

// AggregatePage folds a nutrition page into its PageAggregate. The scan
// is order-dependent: the first qualifying small-serving item flips
// ServingSizeOK and seeds MindfulFood, later ones append with " and ".
func AggregatePage(foods []NutritionRecord) PageAggregate {
	agg := PageAggregate{ServingSizeOK: true}

	for _, food := range foods {
		serving := food.EffectiveServingSizeG()
		factor := per100gReference / serving
		calories := food.Calories * factor

		switch {
		case serving >= mindfulServingG && agg.ServingSizeOK:
			// Full-size serving and nothing flagged yet.
		case !agg.ServingSizeOK:
			if serving < mindfulServingG && calories > mindfulCalories {
				agg.MindfulFood += " and " + food.Name
			}
		default:
			if serving < mindfulServingG && calories > mindfulCalories {
				agg.ServingSizeOK = false
				agg.MindfulFood = food.Name
			}
		}

		agg.Calories += calories
		agg.Fat += food.FatTotalG * factor
		agg.Protein += food.ProteinG * factor
		agg.Sugar += food.SugarG * factor
	}

	return agg
}
