package domain

import "time"

type CatalogImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

// PlanGeneratedEvent is published after a plan has been persisted so the
// grocery cache can be pre-warmed off the request path.
type PlanGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	PlanID        string    `json:"plan_id"`
	UserID        string    `json:"user_id"`
	WeekStartDate string    `json:"week_start_date"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	EventPlanGenerated = "plan.generated"
)
