package formatting

import "fmt"

// truthy mirrors the loose presence checks the event payloads need: false,
// nil, zero, empty string/sequence/map all count as absent.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		if f, ok := toNumber(value); ok {
			return f != 0
		}
		return true
	}
}

// FormatEventSummary formats a calendar event into a short summary. The
// event type is derived by priority: a workout-backed event is a Workout, a
// race is a Race, anything else is Other.
func FormatEventSummary(event map[string]any) string {
	eventDate := getChain(event, "Unknown", "start_date_local", "date")

	eventType := "Other"
	if truthy(event["workout"]) {
		eventType = "Workout"
	} else if truthy(event["race"]) {
		eventType = "Race"
	}

	return fmt.Sprintf(`Date: %s
ID: %s
Type: %s
Name: %s
Description: %s`,
		stringify(eventDate),
		field(event, "N/A", "id"),
		eventType,
		field(event, "Unnamed", "name"),
		field(event, "No description", "description"),
	)
}

// FormatEventDetails formats a calendar event with its conditional workout,
// race and calendar blocks.
func FormatEventDetails(event map[string]any) string {
	details := fmt.Sprintf(`Event Details:

ID: %s
Date: %s
Name: %s
Description: %s`,
		field(event, "N/A", "id"),
		field(event, "Unknown", "date"),
		field(event, "Unnamed", "name"),
		field(event, "No description", "description"),
	)

	if workout, ok := event["workout"].(map[string]any); ok && len(workout) > 0 {
		details += fmt.Sprintf(`

Workout Information:
Workout ID: %s
Sport: %s
Duration: %s seconds
TSS: %s`,
			field(workout, "N/A", "id"),
			field(workout, "Unknown", "sport"),
			field(workout, 0, "duration"),
			field(workout, "N/A", "tss"),
		)

		if intervals, ok := workout["intervals"].([]any); ok {
			details += fmt.Sprintf("\nIntervals: %d", len(intervals))
		}
	}

	if truthy(event["race"]) {
		details += fmt.Sprintf(`

Race Information:
Priority: %s
Result: %s`,
			field(event, "N/A", "priority"),
			field(event, "N/A", "result"),
		)
	}

	if calendar, ok := event["calendar"].(map[string]any); ok {
		details += fmt.Sprintf("\n\nCalendar: %s", field(calendar, "N/A", "name"))
	}

	return details
}
