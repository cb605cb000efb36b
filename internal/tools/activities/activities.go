package activities

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/mvilanova/intervals-mcp-server/internal/formatting"
	"github.com/mvilanova/intervals-mcp-server/internal/icu"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/args"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
	"github.com/mvilanova/intervals-mcp-server/internal/validation"
)

// ListTool lists an athlete's recent activities as formatted summaries.
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
	return "get_activities"
}

// Description returns the tool description
func (t *ListTool) Description() string {
	return "Get a list of activities for an athlete from Intervals.icu, formatted as readable summaries"
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
				"description": "Start date in YYYY-MM-DD format. Defaults to 30 days ago.",
			},
			"end_date": map[string]interface{}{
				"type":        "string",
				"description": "End date in YYYY-MM-DD format. Defaults to today.",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of activities to return. Defaults to 10.",
			},
			"include_unnamed": map[string]interface{}{
				"type":        "boolean",
				"description": "Include activities without a name. Defaults to false.",
			},
		},
	}
}

// Execute fetches and formats the athlete's activities
func (t *ListTool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
	athleteID := args.String(arguments, "athlete_id", t.defaultAthleteID)
	if athleteID == "" {
		return "", errors.New("athlete_id is required and no default athlete is configured")
	}
	if err := validation.ValidateAthleteID(athleteID); err != nil {
		return "", err
	}

	now := time.Now()
	startDate, err := resolveDate(arguments, "start_date", now.AddDate(0, 0, -30))
	if err != nil {
		return "", err
	}
	endDate, err := resolveDate(arguments, "end_date", now)
	if err != nil {
		return "", err
	}
	limit := args.Int(arguments, "limit", 10)
	includeUnnamed := args.Bool(arguments, "include_unnamed", false)

	slog.InfoContext(ctx, "Getting activities", "athlete_id", athleteID, "start_date", startDate, "end_date", endDate, "limit", limit)

	activities, err := t.client.GetActivities(ctx, athleteID, startDate, endDate, limit)
	if err != nil {
		return "", err
	}

	var summaries []string
	for _, activity := range activities {
		if !includeUnnamed {
			if name, _ := activity["name"].(string); name == "" {
				continue
			}
		}
		summaries = append(summaries, formatting.FormatActivitySummary(activity))
		if len(summaries) >= limit && limit > 0 {
			break
		}
	}

	if len(summaries) == 0 {
		return "No activities found for the specified period.", nil
	}
	return "Activities:\n" + strings.Join(summaries, "\n"), nil
}

// resolveDate validates a date argument, falling back to a default.
func resolveDate(arguments map[string]interface{}, key string, fallback time.Time) (string, error) {
	value := args.String(arguments, key, fallback.Format("2006-01-02"))
	return validation.ValidateDate(value)
}

// DetailsTool fetches one activity with its full metric breakdown.
type DetailsTool struct {
	client *icu.Client
}

// NewDetailsTool creates a new DetailsTool instance
func NewDetailsTool(client *icu.Client) *DetailsTool {
	return &DetailsTool{client: client}
}

// Name returns the tool name
func (t *DetailsTool) Name() string {
	return "get_activity_details"
}

// Description returns the tool description
func (t *DetailsTool) Description() string {
	return "Get detailed information for a specific activity from Intervals.icu"
}

// Parameters returns the JSON schema for parameters
func (t *DetailsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"activity_id": map[string]interface{}{
				"type":        "string",
				"description": "The Intervals.icu activity ID",
			},
		},
		"required": []string{"activity_id"},
	}
}

// Execute fetches and formats one activity
func (t *DetailsTool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
	activityID := args.String(arguments, "activity_id", "")
	if activityID == "" {
		return "", errors.New("activity_id is required")
	}

	slog.InfoContext(ctx, "Getting activity details", "activity_id", activityID)

	activity, err := t.client.GetActivity(ctx, activityID)
	if err != nil {
		return "", err
	}
	return formatting.FormatActivitySummary(activity), nil
}

// Ensure the tools implement registry.Tool
var (
	_ registry.Tool = (*ListTool)(nil)
	_ registry.Tool = (*DetailsTool)(nil)
)
