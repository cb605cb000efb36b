package mcpx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// runFallback serves the registered tools through the official MCP Go SDK
// over stdio. This is the known-good host used when no candidate accepted
// the tools.
func (r *Registry) runFallback(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("fallback MCP server panicked: %v", p)
		}
	}()

	slog.Info("Falling back to the MCP SDK stdio server", "name", r.name, "tools", r.Count())

	server := mcp.NewServer(&mcp.Implementation{Name: r.name, Version: "1.0.0"}, nil)
	for _, tool := range r.GetTools() {
		addSDKTool(server, tool)
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}

func addSDKTool(server *mcp.Server, tool Tool) {
	fn := tool.Func
	mcp.AddTool(server, &mcp.Tool{Name: tool.Name, Description: tool.Description},
		func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, any, error) {
			text, err := fn(ctx, args)
			if err != nil {
				return nil, nil, err
			}
			result := &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: text}},
			}
			return result, nil, nil
		})
}
