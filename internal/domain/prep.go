package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// PrepTask is one step in the weekly batch-cooking timeline. Time is the
// HH:MM offset from 00:00 at which the task starts.
type PrepTask struct {
	Time            string   `json:"time"`
	DurationMinutes int      `json:"duration_minutes"`
	Task            string   `json:"task"`
	Description     string   `json:"description"`
	Recipes         []string `json:"recipes"`
}

// PrepTimeline is recomputed on every request and never persisted.
type PrepTimeline struct {
	PlanID           primitive.ObjectID `json:"plan_id"`
	WeekStartDate    string             `json:"week_start_date"`
	PrepDay          string             `json:"prep_day"`
	TotalTimeMinutes int                `json:"total_time_minutes"`
	Tasks            []PrepTask         `json:"tasks"`
}
