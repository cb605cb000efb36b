package factory

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mvilanova/intervals-mcp-server/internal/config"
	"github.com/mvilanova/intervals-mcp-server/internal/icu"
	"github.com/mvilanova/intervals-mcp-server/internal/mcpx"
	"github.com/mvilanova/intervals-mcp-server/internal/redisx"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/activities"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/calendar"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/events"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/intervalsx"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/registry"
	"github.com/mvilanova/intervals-mcp-server/internal/tools/wellness"
)

// Factory creates and registers all available tools
type Factory struct {
	registry *registry.ToolRegistry
	config   *config.Config
}

// NewFactory creates a new tool factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		registry: registry.NewToolRegistry(),
		config:   cfg,
	}
}

// CreateAllTools creates the Intervals.icu client with its cache and
// registers every tool.
func (f *Factory) CreateAllTools(cache *redisx.Cache) *registry.ToolRegistry {
	slog.Info("Creating and registering tools")

	client := icu.NewClient(f.config, cache)
	athleteID := f.config.AthleteID

	f.registry.Register(activities.NewListTool(client, athleteID))
	f.registry.Register(activities.NewDetailsTool(client))
	f.registry.Register(intervalsx.New(client))
	f.registry.Register(events.NewListTool(client, athleteID))
	f.registry.Register(events.NewGetTool(client, athleteID))
	f.registry.Register(events.NewAddTool(client, athleteID))
	f.registry.Register(wellness.New(client, athleteID))
	f.registry.Register(calendar.New(client, athleteID))

	slog.Info("All tools registered successfully", "count", f.registry.Count())
	return f.registry
}

// NewCache connects to redis and wraps it in the response cache. The server
// keeps working without a cache when redis is unreachable.
func NewCache(cfg *config.Config) (*redisx.Cache, *redis.Client) {
	client, err := redisx.Connect(cfg.RedisAddr)
	if err != nil {
		slog.Warn("Redis unavailable, running without response cache", "addr", cfg.RedisAddr, "error", err)
		return nil, nil
	}
	return redisx.NewCache(client, time.Duration(cfg.CacheTTLHours)*time.Hour), client
}

// GetRegistry returns the tool registry
func (f *Factory) GetRegistry() *registry.ToolRegistry {
	return f.registry
}

// BridgeToShim registers every tool from the registry into the MCP shim so
// the binder can wire them into a host runtime.
func BridgeToShim(reg *registry.ToolRegistry, shim *mcpx.Registry) {
	for _, tool := range reg.GetAll() {
		shim.Register(mcpx.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Func:        tool.Execute,
		})
	}
}
