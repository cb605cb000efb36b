package mcpx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Runner is a bound host's run entry point.
type Runner interface {
	Run(ctx context.Context) error
}

// Server is the alternative serve-shaped entry point.
type Server interface {
	Serve(ctx context.Context) error
}

// Run binds every registered tool into the first workable host candidate
// and starts it. Candidates are tried in order; for each candidate every
// tool must bind through one of the strategies and the candidate must
// expose a run or serve entry point. When all candidates fail, Run falls
// back to the official MCP SDK server over stdio. If even the fallback
// fails, the returned error names every registered tool and carries the
// last underlying failure so an operator can wire the tools in by hand.
func (r *Registry) Run(ctx context.Context, hosts ...any) error {
	shutdown, err := r.startLifespan(ctx)
	if err != nil {
		return fmt.Errorf("lifespan setup failed: %w", err)
	}
	if shutdown != nil {
		defer func() {
			if err := shutdown(ctx); err != nil {
				slog.Error("Lifespan shutdown failed", "error", err)
			}
		}()
	}

	var lastErr error
	for _, host := range hosts {
		if host == nil {
			continue
		}
		err := r.bindAndRun(ctx, host)
		if err == nil {
			return nil
		}
		lastErr = err
		slog.Warn("Host candidate failed, trying next", "host", fmt.Sprintf("%T", host), "error", err)
	}

	if err := r.runFallback(ctx); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		return fmt.Errorf(
			"could not bind tools into any host runtime or the fallback server; registered tools: %s; last error: %w",
			strings.Join(r.ToolNames(), ", "), lastErr)
	}
	return nil
}

func (r *Registry) startLifespan(ctx context.Context) (func(context.Context) error, error) {
	if r.lifespan == nil {
		return nil, nil
	}
	return r.lifespan(ctx)
}

// bindAndRun registers every tool into one host candidate and starts it.
func (r *Registry) bindAndRun(ctx context.Context, host any) error {
	binding := &hostBinding{registryName: r.name, host: host}

	for _, tool := range r.GetTools() {
		bound := false
		for _, strategy := range bindStrategies {
			if strategy.Bind(binding, tool) {
				slog.Debug("Tool bound", "tool", tool.Name, "strategy", strategy.Name)
				bound = true
				break
			}
		}
		if !bound {
			return fmt.Errorf("host %T accepts no registration convention for tool %q", host, tool.Name)
		}
	}

	return runEntrypoint(ctx, host, binding.instance)
}

// runEntrypoint locates a run- or serve-shaped entry point on the host, or
// on the server instance the server-class strategy created.
func runEntrypoint(ctx context.Context, host, instance any) error {
	for _, target := range []any{host, instance} {
		if target == nil {
			continue
		}
		if runner, ok := target.(Runner); ok {
			return runner.Run(ctx)
		}
		if server, ok := target.(Server); ok {
			return server.Serve(ctx)
		}
	}
	return fmt.Errorf("host %T exposes no run or serve entry point", host)
}
