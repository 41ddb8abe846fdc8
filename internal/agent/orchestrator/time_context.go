package orchestrator

import "time"

// buildTimeContext gives the planner today's calendar landmarks so relative
// dates in requests ("tomorrow", "this week") can be resolved.
func buildTimeContext(now time.Time) map[string]any {
	// Monday-based week
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return map[string]any{
		"today":      now.Format(DateFormatISO),
		"weekday":    now.Weekday().String(),
		"week_start": weekStart.Format(DateFormatISO),
		"week_end":   weekEnd.Format(DateFormatISO),
		"tomorrow":   now.AddDate(0, 0, 1).Format(DateFormatISO),
		"timezone":   now.Location().String(),
	}
}
