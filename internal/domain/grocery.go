package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroceryItem is one aggregated shopping-list line. Amount is the
// ceiling-rounded sum of all usages sharing the same ingredient and unit.
// EstimatedPrice is nil when the ingredient has no price figure.
type GroceryItem struct {
	IngredientID   string  `json:"ingredient_id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
	EstimatedPrice *int    `json:"estimated_price"`
}

type GroceryCategory struct {
	Category     IngredientCategory `json:"category"`
	CategoryName string             `json:"category_name"`
	Items        []GroceryItem      `json:"items"`
}

type GroceryList struct {
	PlanID              primitive.ObjectID `json:"plan_id"`
	WeekStartDate       string             `json:"week_start_date"`
	Categories          []GroceryCategory  `json:"categories"`
	TotalEstimatedPrice int                `json:"total_estimated_price"`
}

// CachedGroceryItem is the persisted cache row for one grocery line,
// keyed by plan id and replaced wholesale on every rebuild.
type CachedGroceryItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlanID         primitive.ObjectID `bson:"plan_id" json:"plan_id"`
	IngredientID   string             `bson:"ingredient_id" json:"ingredient_id"`
	Amount         float64            `bson:"amount" json:"amount"`
	Unit           string             `bson:"unit" json:"unit"`
	Category       IngredientCategory `bson:"category" json:"category"`
	EstimatedPrice *int               `bson:"estimated_price,omitempty" json:"estimated_price"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
