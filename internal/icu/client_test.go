package icu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvilanova/intervals-mcp-server/internal/config"
	"github.com/mvilanova/intervals-mcp-server/internal/errorsx"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		APIKey:           "testkey",
		IntervalsBaseURL: server.URL,
		UserAgent:        "intervalsicu-mcp-server/1.0",
		RetryMaxAttempts: 2,
		RetryBaseDelayMs: 1,
		RetryMaxDelayMs:  5,
	}
	return NewClient(cfg, nil)
}

func TestGetActivitySendsCredentials(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "API_KEY" || pass != "testkey" {
			t.Errorf("basic auth = (%q, %q, %v)", user, pass, ok)
		}
		if got := r.Header.Get("User-Agent"); got != "intervalsicu-mcp-server/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		if r.URL.Path != "/activity/12345" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"id": 12345, "name": "Morning Ride"}`))
	}))

	activity, err := client.GetActivity(context.Background(), "12345")
	if err != nil {
		t.Fatalf("GetActivity() error: %v", err)
	}
	if activity["name"] != "Morning Ride" {
		t.Errorf("name = %v", activity["name"])
	}
	// Numbers keep their textual form through decoding.
	if id, ok := activity["id"].(json.Number); !ok || id.String() != "12345" {
		t.Errorf("id = %v (%T), want json.Number 12345", activity["id"], activity["id"])
	}
}

func TestGetActivitiesQueryParams(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("oldest") != "2024-04-01" || q.Get("newest") != "2024-05-01" || q.Get("limit") != "10" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[{"id": 1}, "not an object", {"id": 2}]`))
	}))

	activities, err := client.GetActivities(context.Background(), "i123", "2024-04-01", "2024-05-01", 10)
	if err != nil {
		t.Fatalf("GetActivities() error: %v", err)
	}
	// Non-object entries are skipped.
	if len(activities) != 2 {
		t.Errorf("got %d activities, want 2", len(activities))
	}
}

func TestGetActivityNotFound(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such activity", http.StatusNotFound)
	}))

	_, err := client.GetActivity(context.Background(), "nope")
	if !errorsx.IsNotFound(err) {
		t.Errorf("error = %v, want a not-found error", err)
	}
}

func TestGetActivityUnauthorized(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))

	_, err := client.GetActivity(context.Background(), "12345")
	if !errorsx.IsUnauthorized(err) {
		t.Errorf("error = %v, want an unauthorized error", err)
	}
}

func TestGetActivityRetriesServerError(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id": 1}`))
	}))

	if _, err := client.GetActivity(context.Background(), "1"); err != nil {
		t.Fatalf("GetActivity() error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestCreateEvent(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if r.URL.Path != "/athlete/i123/events" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var event map[string]any
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if event["name"] != "Rest Day" {
			t.Errorf("name = %v", event["name"])
		}

		w.Write([]byte(`{"id": 99, "name": "Rest Day"}`))
	}))

	result, err := client.CreateEvent(context.Background(), "i123", map[string]any{
		"name":     "Rest Day",
		"category": "NOTE",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	object, ok := result.(map[string]any)
	if !ok || object["name"] != "Rest Day" {
		t.Errorf("result = %v", result)
	}
}

func TestUpdateEventEmptyResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %q", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))

	result, err := client.UpdateEvent(context.Background(), "i123", "99", map[string]any{"name": "Updated"})
	if err != nil {
		t.Fatalf("UpdateEvent() error: %v", err)
	}
	if result != nil {
		t.Errorf("result = %v, want nil for an empty response body", result)
	}
}

func TestGetWellnessShapes(t *testing.T) {
	t.Run("list response", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id": "2024-05-01"}]`))
		}))
		payload, err := client.GetWellness(context.Background(), "i123", "", "")
		if err != nil {
			t.Fatalf("GetWellness() error: %v", err)
		}
		if _, ok := payload.([]any); !ok {
			t.Errorf("payload = %T, want a list", payload)
		}
	})

	t.Run("date-keyed map response", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"2024-05-01": {"ctl": 75}}`))
		}))
		payload, err := client.GetWellness(context.Background(), "i123", "", "")
		if err != nil {
			t.Fatalf("GetWellness() error: %v", err)
		}
		if _, ok := payload.(map[string]any); !ok {
			t.Errorf("payload = %T, want a map", payload)
		}
	})
}

func TestAsObjectRejectsList(t *testing.T) {
	if _, err := asObject([]any{}); err == nil {
		t.Error("asObject should reject a list payload")
	}
}
