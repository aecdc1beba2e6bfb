package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCalculateDailyTarget(t *testing.T) {
	tests := []struct {
		name     string
		goal     domain.Goal
		weightKG *float64
		want     NutritionTarget
	}{
		{
			name:     "bulk at 70kg",
			goal:     domain.GoalBulk,
			weightKG: floatPtr(70),
			want:     NutritionTarget{ProteinG: 140.0, FatG: 56.0, CarbG: 350.0, Calories: 2464},
		},
		{
			name:     "cut at 80kg",
			goal:     domain.GoalCut,
			weightKG: floatPtr(80),
			want:     NutritionTarget{ProteinG: 176.0, FatG: 40.0, CarbG: 200.0, Calories: 1864},
		},
		{
			name:     "maintain with no weight falls back to 70kg",
			goal:     domain.GoalMaintain,
			weightKG: nil,
			want:     NutritionTarget{ProteinG: 126.0, FatG: 49.0, CarbG: 245.0, Calories: 1925},
		},
		{
			name:     "zero weight falls back to 70kg",
			goal:     domain.GoalBulk,
			weightKG: floatPtr(0),
			want:     NutritionTarget{ProteinG: 140.0, FatG: 56.0, CarbG: 350.0, Calories: 2464},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDailyTarget(tt.goal, tt.weightKG)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePerMealTarget(t *testing.T) {
	// cut at 75kg has odd daily values, so each halved field rounds on its own
	got := CalculatePerMealTarget(domain.GoalCut, floatPtr(75))

	assert.Equal(t, 82.5, got.ProteinG)
	assert.Equal(t, 18.8, got.FatG)
	assert.Equal(t, 93.8, got.CarbG)
	assert.Equal(t, 874, got.Calories)
}

func TestCalculateWeeklyTarget(t *testing.T) {
	daily := CalculateDailyTarget(domain.GoalBulk, floatPtr(70))
	weekly := CalculateWeeklyTarget(domain.GoalBulk, floatPtr(70))

	assert.Equal(t, daily.ProteinG*7, weekly.ProteinG)
	assert.Equal(t, daily.FatG*7, weekly.FatG)
	assert.Equal(t, daily.CarbG*7, weekly.CarbG)
	assert.Equal(t, daily.Calories*7, weekly.Calories)
}
