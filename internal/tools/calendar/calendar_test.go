package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mvilanova/intervals-mcp-server/internal/config"
	"github.com/mvilanova/intervals-mcp-server/internal/icu"
)

func testClient(t *testing.T, handler http.Handler) *icu.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIKey:           "testkey",
		IntervalsBaseURL: server.URL,
		UserAgent:        "intervalsicu-mcp-server/1.0",
		RetryMaxAttempts: 1,
		RetryBaseDelayMs: 1,
		RetryMaxDelayMs:  5,
	}
	return icu.NewClient(cfg, nil)
}

func TestExecuteProducesICS(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "Club TT", "description": "10 mile TT", "start_date_local": "2024-06-15T18:30:00"},
			{"name": "Unplanned", "date": "2024-06-16"}
		]`))
	}))

	tool := New(client, "i123")

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"start_date": "2024-06-01",
		"end_date":   "2024-06-30",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	wantFragments := []string{
		"BEGIN:VCALENDAR",
		"END:VCALENDAR",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"SUMMARY:Club TT",
		"DESCRIPTION:10 mile TT",
		"UID:1@intervals.icu",
		"SUMMARY:Unplanned",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(result, fragment) {
			t.Errorf("ICS missing %q\nfull output:\n%s", fragment, result)
		}
	}
}

func TestExecuteNoEvents(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	tool := New(client, "i123")

	result, err := tool.Execute(context.Background(), map[string]interface{}{
		"start_date": "2024-06-01",
		"end_date":   "2024-06-30",
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result != "No events found for the specified period." {
		t.Errorf("result = %q", result)
	}
}

func TestEventStart(t *testing.T) {
	tests := []struct {
		name  string
		event map[string]any
		want  time.Time
		ok    bool
	}{
		{
			name:  "date-time form",
			event: map[string]any{"start_date_local": "2024-06-15T18:30:00"},
			want:  time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "bare date falls back to the date key",
			event: map[string]any{"date": "2024-06-16"},
			want:  time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "no date at all",
			event: map[string]any{},
			ok:    false,
		},
		{
			name:  "garbage date",
			event: map[string]any{"date": "sometime"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := eventStart(tt.event)
			if ok != tt.ok {
				t.Fatalf("eventStart() ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("eventStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventUID(t *testing.T) {
	if uid := eventUID(map[string]any{"id": float64(42)}); uid != "42@intervals.icu" {
		t.Errorf("eventUID = %q", uid)
	}

	uid := eventUID(map[string]any{})
	if !strings.HasSuffix(uid, "@intervals.icu") || len(uid) <= len("@intervals.icu") {
		t.Errorf("fallback UID = %q, want a generated id with the domain suffix", uid)
	}
}
