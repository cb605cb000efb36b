package events

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mvilanova/intervals-mcp-server/internal/formatting"
	"github.com/mvilanova/intervals-mcp-server/internal/icu"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/args"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
	"github.com/mvilanova/intervals-mcp-server/internal/validation"
)

// ListTool lists an athlete's calendar events as short summaries.
type ListTool struct {
	client           *icu.Client
	defaultAthleteID string
}

// NewListTool creates a new ListTool instance
func NewListTool(client *icu.Client, defaultAthleteID string) *ListTool {
	return &ListTool{client: client, defaultAthleteID: defaultAthleteID}
}

// Name returns the tool name
func (t *ListTool) Name() string {
	return "get_events"
}

// Description returns the tool description
func (t *ListTool) Description() string {
	return "Get calendar events (workouts, races, notes) for an athlete from Intervals.icu"
}

// Parameters returns the JSON schema for parameters
func (t *ListTool) Parameters() map[string]interface{} {
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

// Execute fetches and formats the athlete's events
func (t *ListTool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
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

	slog.InfoContext(ctx, "Getting events", "athlete_id", athleteID, "start_date", startDate, "end_date", endDate)

	events, err := t.client.GetEvents(ctx, athleteID, startDate, endDate)
	if err != nil {
		return "", err
	}
	if len(events) == 0 {
		return "No events found for the specified period.", nil
	}

	summaries := make([]string, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, formatting.FormatEventSummary(event))
	}
	return "Events:\n\n" + strings.Join(summaries, "\n\n"), nil
}

// GetTool fetches one calendar event with its workout and race details.
type GetTool struct {
	client           *icu.Client
	defaultAthleteID string
}

// NewGetTool creates a new GetTool instance
func NewGetTool(client *icu.Client, defaultAthleteID string) *GetTool {
	return &GetTool{client: client, defaultAthleteID: defaultAthleteID}
}

// Name returns the tool name
func (t *GetTool) Name() string {
	return "get_event_by_id"
}

// Description returns the tool description
func (t *GetTool) Description() string {
	return "Get detailed information for a specific calendar event from Intervals.icu"
}

// Parameters returns the JSON schema for parameters
func (t *GetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"event_id": map[string]interface{}{
				"type":        "string",
				"description": "The Intervals.icu event ID",
			},
			"athlete_id": map[string]interface{}{
				"type":        "string",
				"description": "The Intervals.icu athlete ID. Defaults to the configured athlete.",
			},
		},
		"required": []string{"event_id"},
	}
}

// Execute fetches and formats one event
func (t *GetTool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
	eventID := args.String(arguments, "event_id", "")
	if eventID == "" {
		return "", errors.New("event_id is required")
	}
	athleteID := args.String(arguments, "athlete_id", t.defaultAthleteID)
	if athleteID == "" {
		return "", errors.New("athlete_id is required and no default athlete is configured")
	}
	if err := validation.ValidateAthleteID(athleteID); err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Getting event", "athlete_id", athleteID, "event_id", eventID)

	event, err := t.client.GetEventByID(ctx, athleteID, eventID)
	if err != nil {
		return "", err
	}
	return formatting.FormatEventDetails(event), nil
}

// AddTool creates or updates a calendar event.
type AddTool struct {
	client           *icu.Client
	defaultAthleteID string
}

// NewAddTool creates a new AddTool instance
func NewAddTool(client *icu.Client, defaultAthleteID string) *AddTool {
	return &AddTool{client: client, defaultAthleteID: defaultAthleteID}
}

// Name returns the tool name
func (t *AddTool) Name() string {
	return "add_or_update_event"
}

// Description returns the tool description
func (t *AddTool) Description() string {
	return "Add a calendar event (workout, race or note) to Intervals.icu, or update an existing one when event_id is given"
}

// Parameters returns the JSON schema for parameters
func (t *AddTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"athlete_id": map[string]interface{}{
				"type":        "string",
				"description": "The Intervals.icu athlete ID. Defaults to the configured athlete.",
			},
			"event_id": map[string]interface{}{
				"type":        "string",
				"description": "Existing event ID to update. Omit to create a new event.",
			},
			"start_date": map[string]interface{}{
				"type":        "string",
				"description": "Event date in YYYY-MM-DD format",
			},
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Event name",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Event description",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Event category: WORKOUT, RACE_A, RACE_B, RACE_C or NOTE. Defaults to NOTE.",
			},
		},
		"required": []string{"start_date", "name"},
	}
}

// Execute creates or updates the event
func (t *AddTool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
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
	name := args.String(arguments, "name", "")
	if name == "" {
		return "", errors.New("name is required")
	}

	event := map[string]any{
		"start_date_local": startDate + "T00:00:00",
		"name":             name,
		"category":         args.String(arguments, "category", "NOTE"),
	}
	if description := args.String(arguments, "description", ""); description != "" {
		event["description"] = description
	}

	eventID := args.String(arguments, "event_id", "")

	slog.InfoContext(ctx, "Saving event", "athlete_id", athleteID, "event_id", eventID, "name", name)

	var response any
	if eventID != "" {
		response, err = t.client.UpdateEvent(ctx, athleteID, eventID, event)
	} else {
		response, err = t.client.CreateEvent(ctx, athleteID, event)
	}
	if err != nil {
		return "", err
	}

	if saved, ok := response.(map[string]any); ok {
		return "Event saved successfully.\n\n" + formatting.FormatEventDetails(saved), nil
	}
	return "Event saved successfully.", nil
}

// Ensure the tools implement registry.Tool
var (
	_ registry.Tool = (*ListTool)(nil)
	_ registry.Tool = (*GetTool)(nil)
	_ registry.Tool = (*AddTool)(nil)
)
