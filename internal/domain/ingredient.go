package domain

import "time"

type IngredientCategory string

const (
	CategoryMeat      IngredientCategory = "meat"
	CategoryFish      IngredientCategory = "fish"
	CategoryEggDairy  IngredientCategory = "egg_dairy"
	CategoryVegetable IngredientCategory = "vegetable"
	CategoryGrain     IngredientCategory = "grain"
	CategorySeasoning IngredientCategory = "seasoning"
	CategoryOther     IngredientCategory = "other"
)

// CategoryOrder is the fixed display order of grocery list sections.
var CategoryOrder = []IngredientCategory{
	CategoryMeat,
	CategoryFish,
	CategoryEggDairy,
	CategoryVegetable,
	CategoryGrain,
	CategorySeasoning,
	CategoryOther,
}

// CategoryNames maps a category to its Japanese display name.
var CategoryNames = map[IngredientCategory]string{
	CategoryMeat:      "肉類",
	CategoryFish:      "魚介類",
	CategoryEggDairy:  "卵・乳製品",
	CategoryVegetable: "野菜",
	CategoryGrain:     "穀物",
	CategorySeasoning: "調味料",
	CategoryOther:     "その他",
}

// Ingredient is a master-data entry. AvgPricePerUnit is yen per 100 units of
// amount (e.g. per 100g) and nil when no price figure is known.
type Ingredient struct {
	ID              string             `bson:"_id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Aliases         []string           `bson:"aliases" json:"aliases"`
	Category        IngredientCategory `bson:"category" json:"category"`
	Unit            string             `bson:"unit" json:"unit"`
	AvgPricePerUnit *int               `bson:"avg_price_per_unit,omitempty" json:"avg_price_per_unit"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
