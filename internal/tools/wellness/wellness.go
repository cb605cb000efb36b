package wellness

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mvilanova/intervals-mcp-server/internal/formatting"
	"github.com/mvilanova/intervals-mcp-server/internal/icu"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/args"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
	"github.com/mvilanova/intervals-mcp-server/internal/validation"
)

// Tool fetches an athlete's wellness entries as formatted reports.
type Tool struct {
	client           *icu.Client
	defaultAthleteID string
}

// New creates a new wellness tool
func New(client *icu.Client, defaultAthleteID string) *Tool {
	return &Tool{client: client, defaultAthleteID: defaultAthleteID}
}

// Name returns the tool name
func (t *Tool) Name() string {
	return "get_wellness_data"
}

// Description returns the tool description
func (t *Tool) Description() string {
	return "Get wellness data (training load, vital signs, sleep, subjective feelings) for an athlete from Intervals.icu"
}

// Parameters returns the JSON schema for parameters
func (t *Tool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"athlete_id": map[string]interface{}{
				"type":        "string",
				"description": "The Intervals.icu athlete ID. Defaults to the configured athlete.",
			},
			"start_date": map[string]interface{}{
				"type":        "string",
				"description": "Start date in YYYY-MM-DD format. Defaults to 7 days ago.",
			},
			"end_date": map[string]interface{}{
				"type":        "string",
				"description": "End date in YYYY-MM-DD format. Defaults to today.",
			},
		},
	}
}

// Execute fetches and formats the wellness entries
func (t *Tool) Execute(ctx context.Context, arguments map[string]interface{}) (string, error) {
	athleteID := args.String(arguments, "athlete_id", t.defaultAthleteID)
	if athleteID == "" {
		return "", errors.New("athlete_id is required and no default athlete is configured")
	}
	if err := validation.ValidateAthleteID(athleteID); err != nil {
		return "", err
	}

	now := time.Now()
	startDate, err := validation.ValidateDate(args.String(arguments, "start_date", now.AddDate(0, 0, -7).Format("2006-01-02")))
	if err != nil {
		return "", err
	}
	endDate, err := validation.ValidateDate(args.String(arguments, "end_date", now.Format("2006-01-02")))
	if err != nil {
		return "", err
	}

	slog.InfoContext(ctx, "Getting wellness data", "athlete_id", athleteID, "start_date", startDate, "end_date", endDate)

	payload, err := t.client.GetWellness(ctx, athleteID, startDate, endDate)
	if err != nil {
		return "", err
	}

	reports := collectEntries(payload)
	if len(reports) == 0 {
		return "No wellness data found for the specified period.", nil
	}
	return strings.Join(reports, "\n\n"), nil
}

// collectEntries formats wellness entries from either response shape the
// API uses: a list of entries or a map keyed by date.
func collectEntries(payload any) []string {
	switch entries := payload.(type) {
	case []any:
		var reports []string
		for _, entry := range entries {
			if object, ok := entry.(map[string]any); ok {
				reports = append(reports, formatting.FormatWellnessEntry(object))
			}
		}
		return reports
	case map[string]any:
		dates := make([]string, 0, len(entries))
		for date := range entries {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		var reports []string
		for _, date := range dates {
			object, ok := entries[date].(map[string]any)
			if !ok {
				continue
			}
			// Copy before stamping the date so the payload stays read-only.
			entry := make(map[string]any, len(object)+1)
			for key, value := range object {
				entry[key] = value
			}
			if _, present := entry["id"]; !present {
				entry["id"] = date
			}
			reports = append(reports, formatting.FormatWellnessEntry(entry))
		}
		return reports
	default:
		return nil
	}
}

// Ensure Tool implements registry.Tool interface
var _ registry.Tool = (*Tool)(nil)
