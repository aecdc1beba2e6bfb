package planner

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

type aggregateKey struct {
	ingredientID string
	unit         string
}

// AggregateGrocery folds ingredient usages into a categorized shopping list.
// Usages sharing ingredient and unit are summed; the same ingredient in
// different units stays as separate lines (units are never converted).
// Amounts are rounded up to whole units, prices are ceil(amount/100 × price
// per 100 units), and categories appear in the fixed display order with
// items sorted by Japanese collation.
func AggregateGrocery(usages []domain.RecipeIngredient, ingredients map[string]domain.Ingredient) ([]domain.GroceryCategory, int) {
	totals := make(map[aggregateKey]float64)
	for _, usage := range usages {
		if _, ok := ingredients[usage.IngredientID]; !ok {
			continue
		}
		key := aggregateKey{ingredientID: usage.IngredientID, unit: usage.Unit}
		totals[key] += usage.Amount
	}

	byCategory := make(map[domain.IngredientCategory][]domain.GroceryItem)
	totalPrice := 0

	for key, amount := range totals {
		ingredient := ingredients[key.ingredientID]

		var estimatedPrice *int
		if ingredient.AvgPricePerUnit != nil {
			price := int(math.Ceil(amount / 100 * float64(*ingredient.AvgPricePerUnit)))
			estimatedPrice = &price
			totalPrice += price
		}

		byCategory[ingredient.Category] = append(byCategory[ingredient.Category], domain.GroceryItem{
			IngredientID:   key.ingredientID,
			Name:           ingredient.Name,
			Amount:         math.Ceil(amount),
			Unit:           key.unit,
			EstimatedPrice: estimatedPrice,
		})
	}

	collator := collate.New(language.Japanese)

	categories := make([]domain.GroceryCategory, 0, len(byCategory))
	for _, category := range domain.CategoryOrder {
		items := byCategory[category]
		if len(items) == 0 {
			continue
		}

		sort.SliceStable(items, func(i, j int) bool {
			return collator.CompareString(items[i].Name, items[j].Name) < 0
		})

		categories = append(categories, domain.GroceryCategory{
			Category:     category,
			CategoryName: domain.CategoryNames[category],
			Items:        items,
		})
	}

	return categories, totalPrice
}
