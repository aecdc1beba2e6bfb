package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func TestAggregateGrocery(t *testing.T) {
	ingredients := map[string]domain.Ingredient{
		"ing-chicken": {
			ID: "ing-chicken", Name: "鶏むね肉",
			Category: domain.CategoryMeat, AvgPricePerUnit: intPtr(98),
		},
		"ing-onion": {
			ID: "ing-onion", Name: "玉ねぎ",
			Category: domain.CategoryVegetable, AvgPricePerUnit: intPtr(40),
		},
		"ing-cucumber": {
			ID: "ing-cucumber", Name: "きゅうり",
			Category: domain.CategoryVegetable,
		},
		"ing-milk": {
			ID: "ing-milk", Name: "牛乳",
			Category: domain.CategoryEggDairy, AvgPricePerUnit: intPtr(20),
		},
	}

	t.Run("same ingredient and unit are summed", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-chicken", Amount: 150, Unit: "g"},
			{IngredientID: "ing-chicken", Amount: 120, Unit: "g"},
		}

		categories, totalPrice := AggregateGrocery(usages, ingredients)

		require.Len(t, categories, 1)
		require.Len(t, categories[0].Items, 1)

		item := categories[0].Items[0]
		assert.Equal(t, 270.0, item.Amount)
		// ceil(270/100 * 98) = 265
		require.NotNil(t, item.EstimatedPrice)
		assert.Equal(t, 265, *item.EstimatedPrice)
		assert.Equal(t, 265, totalPrice)
	})

	t.Run("amounts are rounded up to whole units", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-onion", Amount: 0.5, Unit: "個"},
			{IngredientID: "ing-onion", Amount: 0.25, Unit: "個"},
		}

		categories, _ := AggregateGrocery(usages, ingredients)

		require.Len(t, categories, 1)
		assert.Equal(t, 1.0, categories[0].Items[0].Amount)
	})

	t.Run("differing units stay separate", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-milk", Amount: 200, Unit: "ml"},
			{IngredientID: "ing-milk", Amount: 1, Unit: "本"},
		}

		categories, _ := AggregateGrocery(usages, ingredients)

		require.Len(t, categories, 1)
		assert.Len(t, categories[0].Items, 2)
	})

	t.Run("categories follow the fixed display order", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-onion", Amount: 100, Unit: "g"},
			{IngredientID: "ing-chicken", Amount: 100, Unit: "g"},
			{IngredientID: "ing-milk", Amount: 200, Unit: "ml"},
		}

		categories, _ := AggregateGrocery(usages, ingredients)

		require.Len(t, categories, 3)
		assert.Equal(t, domain.CategoryMeat, categories[0].Category)
		assert.Equal(t, domain.CategoryEggDairy, categories[1].Category)
		assert.Equal(t, domain.CategoryVegetable, categories[2].Category)
		assert.Equal(t, "肉類", categories[0].CategoryName)
	})

	t.Run("items sort by japanese collation inside a category", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-onion", Amount: 1, Unit: "個"},
			{IngredientID: "ing-cucumber", Amount: 2, Unit: "本"},
		}

		categories, _ := AggregateGrocery(usages, ingredients)

		require.Len(t, categories, 1)
		require.Len(t, categories[0].Items, 2)
		assert.Equal(t, "きゅうり", categories[0].Items[0].Name)
		assert.Equal(t, "玉ねぎ", categories[0].Items[1].Name)
	})

	t.Run("unknown ingredients are skipped", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-ghost", Amount: 100, Unit: "g"},
		}

		categories, totalPrice := AggregateGrocery(usages, ingredients)

		assert.Empty(t, categories)
		assert.Zero(t, totalPrice)
	})

	t.Run("unpriced ingredients carry no estimate", func(t *testing.T) {
		usages := []domain.RecipeIngredient{
			{IngredientID: "ing-cucumber", Amount: 2, Unit: "本"},
		}

		categories, totalPrice := AggregateGrocery(usages, ingredients)

		require.Len(t, categories, 1)
		assert.Nil(t, categories[0].Items[0].EstimatedPrice)
		assert.Zero(t, totalPrice)
	})
}
