package domain

import "time"

type Goal string

const (
	GoalBulk     Goal = "bulk"
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
)

// UserProfile is the planning input for one user. WeightKG is nil when the
// user has not entered a weight; the target calculator falls back to 70kg.
type UserProfile struct {
	ID                  string    `bson:"_id" json:"id"`
	Goal                Goal      `bson:"goal" json:"goal"`
	WeightKG            *float64  `bson:"weight_kg,omitempty" json:"weight_kg"`
	TrainingDaysPerWeek int       `bson:"training_days_per_week" json:"training_days_per_week"`
	CookingTimeWeekday  int       `bson:"cooking_time_weekday" json:"cooking_time_weekday"`
	CookingTimeWeekend  int       `bson:"cooking_time_weekend" json:"cooking_time_weekend"`
	Allergies           []string  `bson:"allergies" json:"allergies"`
	Dislikes            []string  `bson:"dislikes" json:"dislikes"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}
