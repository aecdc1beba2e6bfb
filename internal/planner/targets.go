package planner

import (
	"math"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// NutritionTarget holds PFC grams and calories for one day, one meal or one
// week depending on which calculator produced it.
type NutritionTarget struct {
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbG    float64 `json:"carb_g"`
	Calories int     `json:"calories"`
}

// defaultWeightKG is assumed when the profile has no weight.
const defaultWeightKG = 70

// goalCoefficients is grams per kg bodyweight per day.
var goalCoefficients = map[domain.Goal]struct{ protein, fat, carb float64 }{
	domain.GoalBulk:     {protein: 2.0, fat: 0.8, carb: 5.0},
	domain.GoalCut:      {protein: 2.2, fat: 0.5, carb: 2.5},
	domain.GoalMaintain: {protein: 1.8, fat: 0.7, carb: 3.5},
}

// CalculateDailyTarget computes the daily PFC target from goal and
// bodyweight. Calories use 4/9/4 kcal per gram and are computed from the
// unrounded gram values.
func CalculateDailyTarget(goal domain.Goal, weightKG *float64) NutritionTarget {
	weight := float64(defaultWeightKG)
	if weightKG != nil && *weightKG > 0 {
		weight = *weightKG
	}

	coef := goalCoefficients[goal]

	protein := weight * coef.protein
	fat := weight * coef.fat
	carb := weight * coef.carb

	return NutritionTarget{
		ProteinG: round1(protein),
		FatG:     round1(fat),
		CarbG:    round1(carb),
		Calories: int(math.Round(protein*4 + fat*9 + carb*4)),
	}
}

// CalculatePerMealTarget splits the daily target evenly across lunch and
// dinner. Each field is rounded independently, so the two halves may not sum
// exactly to the daily total.
func CalculatePerMealTarget(goal domain.Goal, weightKG *float64) NutritionTarget {
	daily := CalculateDailyTarget(goal, weightKG)

	return NutritionTarget{
		ProteinG: round1(daily.ProteinG / 2),
		FatG:     round1(daily.FatG / 2),
		CarbG:    round1(daily.CarbG / 2),
		Calories: int(math.Round(float64(daily.Calories) / 2)),
	}
}

// CalculateWeeklyTarget is the daily target scaled to 7 days.
func CalculateWeeklyTarget(goal domain.Goal, weightKG *float64) NutritionTarget {
	daily := CalculateDailyTarget(goal, weightKG)

	return NutritionTarget{
		ProteinG: round1(daily.ProteinG * 7),
		FatG:     round1(daily.FatG * 7),
		CarbG:    round1(daily.CarbG * 7),
		Calories: daily.Calories * 7,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
