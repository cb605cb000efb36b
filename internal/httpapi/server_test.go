package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/mvilanova/intervals-mcp-server/internal/errorsx"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
)

type fakeTool struct {
	name   string
	result string
	err    error
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return "a test tool" }
func (t *fakeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (t *fakeTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return t.result, t.err
}

func testRouter(tools ...registry.Tool) *mux.Router {
	reg := registry.NewToolRegistry()
	for _, tool := range tools {
		reg.Register(tool)
	}
	server := NewServer(reg)

	router := mux.NewRouter()
	router.HandleFunc("/tools", server.ListToolsHandler).Methods(http.MethodGet)
	router.HandleFunc("/tools/{name}", server.CallToolHandler).Methods(http.MethodPost)
	return router
}

func TestListToolsHandler(t *testing.T) {
	router := testRouter(
		&fakeTool{name: "get_activities"},
		&fakeTool{name: "get_events"},
	)

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var response struct {
		Tools []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"tools"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(response.Tools))
	}
	if response.Tools[0].Name != "get_activities" || response.Tools[1].Name != "get_events" {
		t.Errorf("tools = %v", response.Tools)
	}
}

func TestCallToolHandler(t *testing.T) {
	router := testRouter(&fakeTool{name: "mytool", result: "tool output"})

	req := httptest.NewRequest(http.MethodPost, "/tools/mytool", strings.NewReader(`{"limit": 5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response["result"] != "tool output" {
		t.Errorf("result = %q", response["result"])
	}
}

func TestCallToolHandlerEmptyBody(t *testing.T) {
	router := testRouter(&fakeTool{name: "mytool", result: "ok"})

	req := httptest.NewRequest(http.MethodPost, "/tools/mytool", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, an empty body should be accepted", rec.Code)
	}
}

func TestCallToolHandlerUnknownTool(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/tools/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCallToolHandlerBadJSON(t *testing.T) {
	router := testRouter(&fakeTool{name: "mytool"})

	req := httptest.NewRequest(http.MethodPost, "/tools/mytool", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCallToolHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: errorsx.ErrNotFound, expected: http.StatusNotFound},
		{name: "invalid input", err: errorsx.ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "unauthorized", err: errorsx.ErrUnauthorized, expected: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := testRouter(&fakeTool{name: "mytool", err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/tools/mytool", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.expected {
				t.Errorf("status = %d, want %d", rec.Code, tt.expected)
			}

			var response map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if response["error"] == "" {
				t.Error("error body should carry a message")
			}
		})
	}
}
