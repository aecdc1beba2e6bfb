package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TagBatchable marks a recipe as suitable for weekly batch cooking.
const TagBatchable = "batchable"

type Recipe struct {
	ID          string             `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ProteinG    float64            `bson:"protein_g" json:"protein_g"`
	FatG        float64            `bson:"fat_g" json:"fat_g"`
	CarbG       float64            `bson:"carb_g" json:"carb_g"`
	Calories    int                `bson:"calories" json:"calories"`
	CookingTime int                `bson:"cooking_time" json:"cooking_time"`
	Difficulty  Difficulty         `bson:"difficulty" json:"difficulty"`
	Tags        []string           `bson:"tags" json:"tags"`
	Ingredients []RecipeIngredient `bson:"ingredients" json:"ingredients"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type RecipeIngredient struct {
	IngredientID string  `bson:"ingredient_id" json:"ingredient_id"`
	Amount       float64 `bson:"amount" json:"amount"`
	Unit         string  `bson:"unit" json:"unit"`
}

func (r Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
