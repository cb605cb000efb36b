package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/mvilanova/intervals-mcp-server/internal/icu"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/args"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
	"github.com/mvilanova/intervals-mcp-server/internal/validation"
)

// ExportTool renders an athlete's upcoming calendar events as an iCalendar
// feed so they can be imported into an external calendar.
type ExportTool struct {
	client           *icu.Client
	defaultAthleteID string
}

// New creates a new ExportTool instance
func New(client *icu.Client, defaultAthleteID string) *ExportTool {
	return &ExportTool{client: client, defaultAthleteID: defaultAthleteID}
}

// Name returns the tool name
func (t *ExportTool) Name() string {
	return "export_events_ics"
}

// Description returns the tool description
func (t *ExportTool) Description() string {
	return "Export an athlete's Intervals.icu calendar events for a date range as an iCalendar (ICS) document"
}

// Parameters returns the JSON schema for parameters
func (t *ExportTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"athlete_id": map[string]interface{}{
				"type":        "string",
				"description": "The Intervals.icu athlete ID. Defaults to the configured athlete.",
			},
			"start_date": map[string]interface{}{
				"type":        "string",
				"description": "Start date in YYYY-MM-DD format",
			},
			"end_date": map[string]interface{}{
				"type":        "string",
				"description": "End date in YYYY-MM-DD format",
			},
		},
		"required": []string{"start_date", "end_date"},
	}
}

// Execute builds the ICS document from the athlete's events
func (t *ExportTool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
	athleteID := args.String(arguments, "athlete_id", t.defaultAthleteID)
	if athleteID == "" {
		return "", errors.New("athlete_id is required and no default athlete is configured")
	}
	if err := validation.ValidateAthleteID(athleteID); err != nil {
		return "", err
	}

	startDate, err := validation.ValidateDate(args.String(arguments, "start_date", ""))
	if err != nil {
		return "", err
	}
	endDate, err := validation.ValidateDate(args.String(arguments, "end_date", ""))
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Exporting events to ICS", "athlete_id", athleteID, "start_date", startDate, "end_date", endDate)

	events, err := t.client.GetEvents(ctx, athleteID, startDate, endDate)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return "No events found for the specified period.", nil
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//intervals-mcp-server//EN")

	for _, event := range events {
		uid := eventUID(event)
		entry := cal.AddEvent(uid)
		entry.SetCreatedTime(time.Now())

		if name, _ := event["name"].(string); name != "" {
			entry.SetSummary(name)
		} else {
			entry.SetSummary("Untitled event")
		}
		if description, _ := event["description"].(string); description != "" {
			entry.SetDescription(description)
		}

		if start, ok := eventStart(event); ok {
			entry.SetStartAt(start)
			entry.SetEndAt(start.Add(time.Hour))
		}
	}

	return cal.Serialize(), nil
}

// eventUID derives a stable UID from the event ID, falling back to a random
// one for events the API returned without an ID.
func eventUID(event map[string]any) string {
	if id, ok := event["id"]; ok && id != nil {
		return fmt.Sprintf("%v@intervals.icu", id)
	}
	return uuid.NewString() + "@intervals.icu"
}

// eventStart parses the event's local start date, tolerating both the bare
// date and date-time forms the API uses.
func eventStart(event map[string]any) (time.Time, bool) {
	value, _ := event["start_date_local"].(string)
	if value == "" {
		value, _ = event["date"].(string)
	}
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Ensure ExportTool implements registry.Tool interface
var _ registry.Tool = (*ExportTool)(nil)
