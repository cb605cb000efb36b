package wellness

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

func TestExecuteListResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/athlete/i123/wellness" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": "2024-05-01", "ctl": 75, "restingHR": 48},
			{"id": "2024-05-02", "ctl": 76}
		]`))
	}))

	tool := New(client, "i123")

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if !strings.Contains(result, "Date: 2024-05-01") || !strings.Contains(result, "Date: 2024-05-02") {
		t.Errorf("result missing entries:\n%s", result)
	}
	if !strings.Contains(result, "- Fitness (CTL): 75") {
		t.Errorf("result missing CTL line:\n%s", result)
	}
	if !strings.Contains(result, "- Resting HR: 48 bpm") {
		t.Errorf("result missing resting HR line:\n%s", result)
	}
}

func TestExecuteDateKeyedResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"2024-05-02": {"ctl": 76},
			"2024-05-01": {"ctl": 75}
		}`))
	}))

	tool := New(client, "i123")

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	// Dates from the map keys are stamped in and reported in sorted order.
	first := strings.Index(result, "Date: 2024-05-01")
	second := strings.Index(result, "Date: 2024-05-02")
	if first == -1 || second == -1 {
		t.Fatalf("result missing entries:\n%s", result)
	}
	if first > second {
		t.Errorf("entries should be sorted by date:\n%s", result)
	}
}

func TestExecuteEmptyResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	tool := New(client, "i123")

	result, err := tool.Execute(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result != "No wellness data found for the specified period." {
		t.Errorf("result = %q", result)
	}
}

func TestCollectEntriesKeepsPayloadIntact(t *testing.T) {
	entry := map[string]any{"ctl": float64(75)}
	payload := map[string]any{"2024-05-01": entry}

	collectEntries(payload)

	if _, present := entry["id"]; present {
		t.Error("collectEntries must not mutate the source payload")
	}
}

func TestCollectEntriesKeepsExplicitID(t *testing.T) {
	payload := map[string]any{
		"2024-05-01": map[string]any{"id": "custom-id"},
	}

	reports := collectEntries(payload)
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if !strings.Contains(reports[0], "Date: custom-id") {
		t.Errorf("an explicit entry id should win over the map key:\n%s", reports[0])
	}
}
