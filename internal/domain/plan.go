package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MealSlot string

const (
	MealLunch  MealSlot = "lunch"
	MealDinner MealSlot = "dinner"
	// MealSnack is reserved; the generator only fills lunch and dinner.
	MealSnack MealSlot = "snack"
)

// PlanItem assigns one recipe to a (day, slot) position.
// DayOfWeek is 0=Monday .. 6=Sunday.
type PlanItem struct {
	DayOfWeek int      `bson:"day_of_week" json:"day_of_week"`
	MealSlot  MealSlot `bson:"meal_slot" json:"meal_slot"`
	RecipeID  string   `bson:"recipe_id" json:"recipe_id"`
}

// Plan is a generated weekly plan. Items always holds exactly 14 entries,
// one per (day, lunch|dinner) pair, embedded so plan and items are written
// in a single insert.
type Plan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	WeekStartDate string             `bson:"week_start_date" json:"week_start_date"`
	Goal          Goal               `bson:"goal" json:"goal"`
	Items         []PlanItem         `bson:"items" json:"items"`
	TotalProteinG float64            `bson:"total_protein_g" json:"total_protein_g"`
	TotalCalories int                `bson:"total_calories" json:"total_calories"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
