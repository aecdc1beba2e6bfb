package planner

import "time"

const dateLayout = "2006-01-02"

// WeekStartDate returns the Monday of the week containing t, formatted
// YYYY-MM-DD. A Sunday rolls back six days.
func WeekStartDate(t time.Time) string {
	weekday := int(t.Weekday()) // 0=Sunday .. 6=Saturday

	var diff int
	if weekday == 0 {
		diff = -6
	} else {
		diff = 1 - weekday
	}

	return t.AddDate(0, 0, diff).Format(dateLayout)
}

// IsMonday reports whether the YYYY-MM-DD date string parses and falls on a
// Monday.
func IsMonday(date string) bool {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Monday
}
