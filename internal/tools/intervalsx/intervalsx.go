package intervalsx

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mvilanova/intervals-mcp-server/internal/formatting"
	"github.com/mvilanova/intervals-mcp-server/internal/icu"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/args"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
)

// Tool fetches the interval analysis for an activity.
type Tool struct {
	client *icu.Client
}

// New creates a new interval analysis tool
func New(client *icu.Client) *Tool {
	return &Tool{client: client}
}

// Name returns the tool name
func (t *Tool) Name() string {
	return "get_activity_intervals"
}

// Description returns the tool description
func (t *Tool) Description() string {
	return "Get the interval analysis for a specific activity from Intervals.icu, including per-interval power, heart rate, speed, cadence and environment metrics"
}

// Parameters returns the JSON schema for parameters
func (t *Tool) Parameters() map[string]interface{} {
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

// Execute fetches and formats the interval analysis
func (t *Tool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
	activityID := args.String(arguments, "activity_id", "")
	if activityID == "" {
		return "", errors.New("activity_id is required")
	}

	slog.InfoContext(ctx, "Getting activity intervals", "activity_id", activityID)

	intervalsData, err := t.client.GetActivityIntervals(ctx, activityID)
	if err != nil {
		return "", err
	}
	return formatting.FormatIntervals(intervalsData), nil
}

// Ensure Tool implements registry.Tool interface
var _ registry.Tool = (*Tool)(nil)
