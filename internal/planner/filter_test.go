package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

func TestFilterByConstraints(t *testing.T) {
	ingredients := map[string]domain.Ingredient{
		"ing-chicken": {ID: "ing-chicken", Name: "鶏むね肉", Aliases: []string{"鶏胸肉"}},
		"ing-celery":  {ID: "ing-celery", Name: "セロリ"},
		"ing-soba":    {ID: "ing-soba", Name: "そば粉"},
		"ing-rice":    {ID: "ing-rice", Name: "白米"},
	}

	omelette := domain.Recipe{
		ID: "r-omelette", Name: "オムレツ", Tags: []string{"egg"},
		Ingredients: []domain.RecipeIngredient{{IngredientID: "ing-chicken", Amount: 100, Unit: "g"}},
	}
	celerySoup := domain.Recipe{
		ID: "r-celery-soup", Name: "スープ",
		Ingredients: []domain.RecipeIngredient{{IngredientID: "ing-celery", Amount: 50, Unit: "g"}},
	}
	sobaBowl := domain.Recipe{
		ID: "r-soba", Name: "そば",
		Ingredients: []domain.RecipeIngredient{{IngredientID: "ing-soba", Amount: 200, Unit: "g"}},
	}
	chickenRice := domain.Recipe{
		ID: "r-chicken-rice", Name: "鶏むね丼", Tags: []string{"chicken", "batchable"},
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: "ing-chicken", Amount: 150, Unit: "g"},
			{IngredientID: "ing-rice", Amount: 200, Unit: "g"},
		},
	}
	spicyStirFry := domain.Recipe{
		ID: "r-spicy", Name: "麻婆豆腐", Tags: []string{"SPICY"},
	}

	recipes := []domain.Recipe{omelette, celerySoup, sobaBowl, chickenRice, spicyStirFry}

	t.Run("allergy excludes mapped tag", func(t *testing.T) {
		got := FilterByConstraints(recipes, Constraints{Allergies: []string{"卵"}}, ingredients)

		ids := recipeIDs(got)
		assert.NotContains(t, ids, "r-omelette")
		assert.Contains(t, ids, "r-chicken-rice")
	})

	t.Run("dislike excludes by ingredient name", func(t *testing.T) {
		got := FilterByConstraints(recipes, Constraints{Dislikes: []string{"セロリ"}}, ingredients)

		assert.NotContains(t, recipeIDs(got), "r-celery-soup")
	})

	t.Run("unmapped allergy falls back to ingredient name matching", func(t *testing.T) {
		got := FilterByConstraints(recipes, Constraints{Allergies: []string{"そば"}}, ingredients)

		assert.NotContains(t, recipeIDs(got), "r-soba")
	})

	t.Run("dislike matches tags case-insensitively", func(t *testing.T) {
		got := FilterByConstraints(recipes, Constraints{Dislikes: []string{"Spicy"}}, ingredients)

		assert.NotContains(t, recipeIDs(got), "r-spicy")
	})

	t.Run("alias matches too", func(t *testing.T) {
		got := FilterByConstraints(recipes, Constraints{Dislikes: []string{"鶏胸肉"}}, ingredients)

		ids := recipeIDs(got)
		assert.NotContains(t, ids, "r-omelette")
		assert.NotContains(t, ids, "r-chicken-rice")
	})

	t.Run("no constraints keeps everything in order", func(t *testing.T) {
		got := FilterByConstraints(recipes, Constraints{}, ingredients)

		assert.Equal(t, recipeIDs(recipes), recipeIDs(got))
	})
}

func TestFilterByTime(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: "r-quick", CookingTime: 10},
		{ID: "r-exact", CookingTime: 30},
		{ID: "r-slow", CookingTime: 45},
	}

	got := FilterByTime(recipes, 30)

	assert.Equal(t, []string{"r-quick", "r-exact"}, recipeIDs(got))
}

func TestApplyFilters(t *testing.T) {
	ingredients := map[string]domain.Ingredient{}
	recipes := []domain.Recipe{
		{ID: "r-quick", CookingTime: 10},
		{ID: "r-slow", CookingTime: 45},
		{ID: "r-egg", CookingTime: 5, Tags: []string{"egg"}},
	}

	maxTime := 30
	got := ApplyFilters(recipes, Constraints{Allergies: []string{"卵"}}, ingredients, &maxTime)
	assert.Equal(t, []string{"r-quick"}, recipeIDs(got))

	got = ApplyFilters(recipes, Constraints{Allergies: []string{"卵"}}, ingredients, nil)
	assert.Equal(t, []string{"r-quick", "r-slow"}, recipeIDs(got))
}

func recipeIDs(recipes []domain.Recipe) []string {
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	return ids
}
