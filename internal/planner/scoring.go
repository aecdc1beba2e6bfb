package planner

import (
	"math"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// ScoringContext is the per-slot planning state a candidate is scored
// against. It is passed by value so no scoring call mutates shared state.
type ScoringContext struct {
	Target          NutritionTarget
	Goal            domain.Goal
	Selected        []domain.Recipe
	MaxTime         int
	RecentRecipeIDs []string
}

// macroWeights is the per-goal PFC weighting of the macro-fit score.
var macroWeights = map[domain.Goal]struct{ protein, fat, carb float64 }{
	domain.GoalBulk:     {protein: 0.4, fat: 0.1, carb: 0.5},
	domain.GoalCut:      {protein: 0.6, fat: 0.2, carb: 0.2},
	domain.GoalMaintain: {protein: 0.4, fat: 0.3, carb: 0.3},
}

// MacroFitScore rates how close the recipe's PFC is to the per-meal target,
// 0 to 40. Per-macro fit is 1 - |recipe - target| / max(target, 1), clamped
// to [0, 1].
func MacroFitScore(recipe domain.Recipe, target NutritionTarget, goal domain.Goal) float64 {
	w := macroWeights[goal]

	proteinFit := 1 - math.Abs(recipe.ProteinG-target.ProteinG)/math.Max(target.ProteinG, 1)
	fatFit := 1 - math.Abs(recipe.FatG-target.FatG)/math.Max(target.FatG, 1)
	carbFit := 1 - math.Abs(recipe.CarbG-target.CarbG)/math.Max(target.CarbG, 1)

	fit := w.protein*clamp01(proteinFit) + w.fat*clamp01(fatFit) + w.carb*clamp01(carbFit)

	return fit * 40
}

// IngredientOverlapScore rewards reusing ingredients already covered by the
// recipes selected earlier in the run, 0 to 30. The first selection of a run
// always scores 0.
func IngredientOverlapScore(recipe domain.Recipe, selected []domain.Recipe) float64 {
	if len(selected) == 0 {
		return 0
	}

	selectedIDs := make(map[string]struct{})
	for _, r := range selected {
		for _, usage := range r.Ingredients {
			selectedIDs[usage.IngredientID] = struct{}{}
		}
	}

	if len(recipe.Ingredients) == 0 {
		return 0
	}

	overlap := 0
	for _, usage := range recipe.Ingredients {
		if _, ok := selectedIDs[usage.IngredientID]; ok {
			overlap++
		}
	}

	return float64(overlap) / float64(len(recipe.Ingredients)) * 30
}

// ConvenienceScore combines cooking time (0-15, shorter is better relative
// to the slot's time budget) and difficulty (easy 5, medium 3, hard 0).
func ConvenienceScore(recipe domain.Recipe, maxTime int) float64 {
	timeScore := math.Max(0, 1-float64(recipe.CookingTime)/math.Max(float64(maxTime), 1)) * 15

	var difficultyScore float64
	switch recipe.Difficulty {
	case domain.DifficultyEasy:
		difficultyScore = 5
	case domain.DifficultyMedium:
		difficultyScore = 3
	case domain.DifficultyHard:
		difficultyScore = 0
	}

	return timeScore + difficultyScore
}

// DiversityScore penalises recipes used in recent prior plans, 0 to 10.
// Each prior use costs 3 points, floored at 0.
func DiversityScore(recipe domain.Recipe, recentRecipeIDs []string) float64 {
	if len(recentRecipeIDs) == 0 {
		return 10
	}

	used := 0
	for _, id := range recentRecipeIDs {
		if id == recipe.ID {
			used++
		}
	}

	return math.Max(0, float64(10-used*3))
}

// TotalScore is the 0-100 suitability of a candidate for the current slot:
// macro fit 40 + ingredient overlap 30 + convenience 20 + diversity 10.
func TotalScore(recipe domain.Recipe, ctx ScoringContext) float64 {
	return MacroFitScore(recipe, ctx.Target, ctx.Goal) +
		IngredientOverlapScore(recipe, ctx.Selected) +
		ConvenienceScore(recipe, ctx.MaxTime) +
		DiversityScore(recipe, ctx.RecentRecipeIDs)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
