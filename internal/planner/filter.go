package planner

import (
	"strings"

	"github.com/HitsujiNeko/BulkCart/internal/domain"
)

// Constraints carries the user's allergy and dislike terms (Japanese,
// e.g. ["卵", "乳製品"] / ["納豆", "セロリ"]).
type Constraints struct {
	Allergies []string
	Dislikes  []string
}

// allergyTagMapping translates a Japanese allergy term into the recipe tags
// it excludes. Terms without a mapping fall back to ingredient-name matching
// only.
var allergyTagMapping = map[string][]string{
	"卵":    {"egg"},
	"乳製品":  {"dairy"},
	"小麦":   {"wheat"},
	"大豆":   {"soy"},
	"魚":    {"fish"},
	"甲殻類":  {"shellfish"},
	"ナッツ":  {"nuts"},
}

// FilterByConstraints drops recipes that carry an excluded tag or contain an
// ingredient whose name or alias contains a raw allergy/dislike term. Input
// order is preserved.
func FilterByConstraints(recipes []domain.Recipe, c Constraints, ingredients map[string]domain.Ingredient) []domain.Recipe {
	excludeTags := make(map[string]struct{})
	for _, allergy := range c.Allergies {
		for _, tag := range allergyTagMapping[allergy] {
			excludeTags[tag] = struct{}{}
		}
	}
	for _, dislike := range c.Dislikes {
		excludeTags[strings.ToLower(dislike)] = struct{}{}
	}

	filtered := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if hasExcludedTag(recipe, excludeTags) {
			continue
		}
		if hasExcludedIngredient(recipe, c, ingredients) {
			continue
		}
		filtered = append(filtered, recipe)
	}

	return filtered
}

func hasExcludedTag(recipe domain.Recipe, excludeTags map[string]struct{}) bool {
	for _, tag := range recipe.Tags {
		if _, ok := excludeTags[strings.ToLower(tag)]; ok {
			return true
		}
	}
	return false
}

// hasExcludedIngredient checks raw substring containment against ingredient
// names and aliases. Terms are intentionally not lowercased here; only the
// tag pass is case-insensitive.
func hasExcludedIngredient(recipe domain.Recipe, c Constraints, ingredients map[string]domain.Ingredient) bool {
	for _, usage := range recipe.Ingredients {
		ingredient, ok := ingredients[usage.IngredientID]
		if !ok {
			continue
		}

		names := append([]string{ingredient.Name}, ingredient.Aliases...)
		for _, name := range names {
			for _, allergy := range c.Allergies {
				if strings.Contains(name, allergy) {
					return true
				}
			}
			for _, dislike := range c.Dislikes {
				if strings.Contains(name, dislike) {
					return true
				}
			}
		}
	}
	return false
}

// FilterByTime drops recipes whose cooking time exceeds maxTime minutes.
func FilterByTime(recipes []domain.Recipe, maxTime int) []domain.Recipe {
	filtered := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.CookingTime <= maxTime {
			filtered = append(filtered, recipe)
		}
	}
	return filtered
}

// ApplyFilters runs the constraint filter and, when maxTime is non-nil, the
// time filter on top of it.
func ApplyFilters(recipes []domain.Recipe, c Constraints, ingredients map[string]domain.Ingredient, maxTime *int) []domain.Recipe {
	filtered := FilterByConstraints(recipes, c, ingredients)
	if maxTime != nil {
		filtered = FilterByTime(filtered, *maxTime)
	}
	return filtered
}
