// Package httpapi exposes the registered tools over plain HTTP JSON for
// debugging and manual exercise; the MCP stdio transport is the primary
// surface.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mvilanova/intervals-mcp-server/internal/errorsx"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
)

// Server serves tool listing and invocation endpoints.
type Server struct {
	registry *registry.ToolRegistry
}

// NewServer creates a new Server backed by a tool registry.
func NewServer(reg *registry.ToolRegistry) *Server {
	return &Server{registry: reg}
}

type toolDescriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ListToolsHandler handles GET /tools
func (s *Server) ListToolsHandler(w http.ResponseWriter, r *http.Request) {
	tools := s.registry.GetAll()
	descriptors := make([]toolDescriptor, 0, len(tools))
	for _, tool := range tools {
		descriptors = append(descriptors, toolDescriptor{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tools": descriptors})
}

// CallToolHandler handles POST /tools/{name}
func (s *Server) CallToolHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	tool := s.registry.Get(name)
	if tool == nil {
		writeError(w, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	args := map[string]interface{}{}
	if r.Body != nil {
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		if err := decoder.Decode(&args); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
	}

	result, err := tool.Execute(r.Context(), args)
	if err != nil {
		writeError(w, errorsx.ToHTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": result})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
