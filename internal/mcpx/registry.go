// Package mcpx adapts a simple named-tool registration façade onto whatever
// MCP host runtime is available at run time. Tool code registers callables
// here without targeting a specific host API; Run later binds them into the
// first host candidate that accepts one of a small set of registration
// conventions, falling back to the official MCP Go SDK server.
package mcpx

import (
	"context"
	"log/slog"
)

// ToolFunc is the calling convention every registered tool shares: JSON
// arguments in, display text out.
type ToolFunc func(ctx context.Context, args map[string]any) (string, error)

// Tool pairs a callable with its registration name and description.
type Tool struct {
	Name        string
	Description string
	Func        ToolFunc
}

// Lifespan is an optional setup hook invoked when a bound host starts. The
// returned shutdown function runs when the host stops.
type Lifespan func(ctx context.Context) (shutdown func(ctx context.Context) error, err error)

// Registry collects tools by name. Registering a name twice overwrites the
// earlier entry; enumeration order follows first registration.
type Registry struct {
	name     string
	lifespan Lifespan
	order    []string
	tools    map[string]Tool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLifespan attaches a lifecycle hook invoked around the host's lifetime.
func WithLifespan(lifespan Lifespan) Option {
	return func(r *Registry) {
		r.lifespan = lifespan
	}
}

// NewRegistry creates an empty registry identified by a server name.
func NewRegistry(name string, opts ...Option) *Registry {
	r := &Registry{
		name:  name,
		tools: make(map[string]Tool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tool returns a registration function for a named tool. The callable is
// returned unchanged so it stays independently callable.
func (r *Registry) Tool(name, description string) func(ToolFunc) ToolFunc {
	return func(fn ToolFunc) ToolFunc {
		r.Register(Tool{Name: name, Description: description, Func: fn})
		return fn
	}
}

// Register adds a tool under its name. Last registration wins.
func (r *Registry) Register(tool Tool) {
	if _, exists := r.tools[tool.Name]; exists {
		slog.Warn("Tool already registered, overwriting", "name", tool.Name)
	} else {
		r.order = append(r.order, tool.Name)
	}
	r.tools[tool.Name] = tool
	slog.Info("Tool registered", "name", tool.Name)
}

// GetTools returns every registered tool in registration order.
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	return len(r.tools)
}

// ToolNames returns the registered tool names in registration order.
func (r *Registry) ToolNames() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
