package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smokifit/smokifit/internal/session"
)

func TestAggregatePage_Normalization(t *testing.T) {
	tests := []struct {
		name         string
		foods        []session.NutritionRecord
		wantCalories float64
		wantFat      float64
		wantProtein  float64
		wantSugar    float64
	}{
		{
			name: "100g serving passes through unchanged",
			foods: []session.NutritionRecord{
				{Name: "Rice", Calories: 130, ServingSizeG: 100, FatTotalG: 0.3, ProteinG: 2.7, SugarG: 0.1},
			},
			wantCalories: 130,
			wantFat:      0.3,
			wantProtein:  2.7,
			wantSugar:    0.1,
		},
		{
			name: "50g serving doubles",
			foods: []session.NutritionRecord{
				{Name: "Bar", Calories: 200, ServingSizeG: 50, FatTotalG: 5, ProteinG: 4, SugarG: 12},
			},
			wantCalories: 400,
			wantFat:      10,
			wantProtein:  8,
			wantSugar:    24,
		},
		{
			name: "missing serving size defaults to 100",
			foods: []session.NutritionRecord{
				{Name: "Mystery", Calories: 250, FatTotalG: 8, ProteinG: 10, SugarG: 3},
			},
			wantCalories: 250,
			wantFat:      8,
			wantProtein:  10,
			wantSugar:    3,
		},
		{
			name: "totals sum across records",
			foods: []session.NutritionRecord{
				{Name: "A", Calories: 400, ServingSizeG: 50},
				{Name: "B", Calories: 200, ServingSizeG: 100},
			},
			wantCalories: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := session.AggregatePage(tt.foods)
			assert.InDelta(t, tt.wantCalories, agg.Calories, 1e-9)
			assert.InDelta(t, tt.wantFat, agg.Fat, 1e-9)
			assert.InDelta(t, tt.wantProtein, agg.Protein, 1e-9)
			assert.InDelta(t, tt.wantSugar, agg.Sugar, 1e-9)
		})
	}
}

func TestAggregatePage_MindfulFoodScan(t *testing.T) {
	tests := []struct {
		name            string
		foods           []session.NutritionRecord
		wantOK          bool
		wantMindfulFood string
	}{
		{
			name:   "empty page stays clean",
			foods:  nil,
			wantOK: true,
		},
		{
			name: "full servings never flag",
			foods: []session.NutritionRecord{
				{Name: "Pasta", Calories: 900, ServingSizeG: 200},
			},
			wantOK: true,
		},
		{
			name: "small serving below calorie threshold does not flag",
			foods: []session.NutritionRecord{
				{Name: "Crackers", Calories: 120, ServingSizeG: 50},
			},
			wantOK: true,
		},
		{
			name: "dense small serving flags and names the item",
			foods: []session.NutritionRecord{
				{Name: "A", Calories: 400, ServingSizeG: 50},
				{Name: "B", Calories: 200, ServingSizeG: 100},
			},
			wantOK:          false,
			wantMindfulFood: "A",
		},
		{
			name: "subsequent flagged items join with and",
			foods: []session.NutritionRecord{
				{Name: "Chocolate", Calories: 250, ServingSizeG: 40},
				{Name: "Fudge", Calories: 200, ServingSizeG: 45},
			},
			wantOK:          false,
			wantMindfulFood: "Chocolate and Fudge",
		},
		{
			name: "clean items after a flag are not appended",
			foods: []session.NutritionRecord{
				{Name: "Chocolate", Calories: 250, ServingSizeG: 40},
				{Name: "Salad", Calories: 30, ServingSizeG: 80},
			},
			wantOK:          false,
			wantMindfulFood: "Chocolate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := session.AggregatePage(tt.foods)
			assert.Equal(t, tt.wantOK, agg.ServingSizeOK)
			assert.Equal(t, tt.wantMindfulFood, agg.MindfulFood)
		})
	}
}

// TestAggregatePage_Deterministic verifies the fold is a pure function:
// the same page in the same order always yields the same aggregate.
func TestAggregatePage_Deterministic(t *testing.T) {
	foods := []session.NutritionRecord{
		{Name: "A", Calories: 400, ServingSizeG: 50, FatTotalG: 20, ProteinG: 5, SugarG: 30},
		{Name: "B", Calories: 200, ServingSizeG: 100, FatTotalG: 3, ProteinG: 12, SugarG: 1},
	}
	first := session.AggregatePage(foods)
	for range 5 {
		assert.Equal(t, first, session.AggregatePage(foods))
	}
}
