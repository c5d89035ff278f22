package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokifit/smokifit/internal/tracker"
)

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		gender   tracker.Gender
		age      int
		weightKg float64
		heightCm float64
		want     float64
	}{
		{
			// 88.362 + 13.397*80 + 4.799*180 - 5.677*30 = 1853.632
			name:   "male",
			gender: tracker.Male,
			age:    30, weightKg: 80, heightCm: 180,
			want: 1853.632,
		},
		{
			// 447.593 + 9.247*60 + 3.098*165 - 4.330*25 = 1405.333
			name:   "female",
			gender: tracker.Female,
			age:    25, weightKg: 60, heightCm: 165,
			want: 1405.333,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tracker.BMR(tt.gender, tt.age, tt.weightKg, tt.heightCm)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestBMR_UnknownGender(t *testing.T) {
	_, err := tracker.BMR("Other", 30, 80, 180)
	require.ErrorIs(t, err, tracker.ErrUnknownGender)
}

func TestDailyNeed(t *testing.T) {
	assert.Equal(t, 2224, tracker.DailyNeed(1853.632, 1.2))
	assert.Equal(t, 2873, tracker.DailyNeed(1853.632, 1.55))
}

func TestAdjustForGoal(t *testing.T) {
	assert.Equal(t, 2500, tracker.AdjustForGoal(2000, tracker.Gain))
	assert.Equal(t, 1500, tracker.AdjustForGoal(2000, tracker.Lose))
	assert.Equal(t, 2000, tracker.AdjustForGoal(2000, tracker.Maintain))
}

func TestActivityLevels_Ordered(t *testing.T) {
	require.Len(t, tracker.ActivityLevels, 5)
	for i := 1; i < len(tracker.ActivityLevels); i++ {
		assert.Greater(t,
			tracker.ActivityLevels[i].Factor,
			tracker.ActivityLevels[i-1].Factor)
	}
}
