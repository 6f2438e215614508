package crew

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/services"
)

// Resolver turns database references inside a Config into primitives the
// worker can consume without a database connection. Runs server-side only.
type Resolver struct {
	tools  *services.ToolService
	flows  *services.FlowService
	memory *services.MemoryConfigService
}

// NewResolver creates a resolver over the repository services.
func NewResolver(tools *services.ToolService, flows *services.FlowService, memory *services.MemoryConfigService) *Resolver {
	return &Resolver{tools: tools, flows: flows, memory: memory}
}

// Resolve validates cfg and materializes tool and flow references in place.
// overrideStartingPoints, when non-nil, replaces whatever starting points the
// persisted flow record carries — the caller passes the request's own flow
// config here so in-flight frontend edits win over the stored record.
func (r *Resolver) Resolve(ctx context.Context, cfg *Config, gc *groupctx.GroupContext, overrideStartingPoints []string) error {
	if !gc.IsValid() {
		return services.ErrSecurityViolation
	}
	if err := validate(cfg); err != nil {
		return err
	}

	for i := range cfg.Agents {
		resolved, err := r.resolveAgentTools(ctx, &cfg.Agents[i], gc.GroupIDs)
		if err != nil {
			return err
		}
		cfg.Agents[i].ResolvedTools = resolved
	}

	if cfg.Flow != nil {
		if err := r.resolveFlow(ctx, cfg.Flow, gc.GroupIDs, overrideStartingPoints); err != nil {
			return err
		}
	}
	return nil
}

// MemoryProfile loads the group's active memory backend selection as
// worker-safe primitives. Nil means "no custom config, library default".
func (r *Resolver) MemoryProfile(ctx context.Context, groupID string) (*MemoryProfile, error) {
	rec, err := r.memory.Active(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return &MemoryProfile{
		BackendType:      string(rec.BackendType),
		ShortTermEnabled: rec.ShortTermEnabled,
		LongTermEnabled:  rec.LongTermEnabled,
		EntityEnabled:    rec.EntityEnabled,
		Embedder:         rec.Embedder,
		Databricks:       rec.Databricks,
	}, nil
}

// validate checks the structural rules the API schema cannot express.
func validate(cfg *Config) error {
	if len(cfg.Agents) == 0 {
		return fmt.Errorf("%w: crew has no agents", services.ErrInvalidConfig)
	}
	roles := make(map[string]bool, len(cfg.Agents))
	for _, a := range cfg.Agents {
		if a.Role == "" {
			return fmt.Errorf("%w: agent with empty role", services.ErrInvalidConfig)
		}
		roles[a.Role] = true
	}
	if len(cfg.Tasks) == 0 && cfg.Flow == nil {
		return fmt.Errorf("%w: crew has neither tasks nor a flow", services.ErrInvalidConfig)
	}
	for _, t := range cfg.Tasks {
		if t.Description == "" {
			return fmt.Errorf("%w: task %q has no description", services.ErrInvalidConfig, t.ID)
		}
		if t.Agent != "" && !roles[t.Agent] {
			return fmt.Errorf("%w: task %q references unknown agent %q", services.ErrInvalidConfig, t.ID, t.Agent)
		}
	}
	return nil
}

// resolveAgentTools resolves each tool reference for one agent, merging the
// agent's per-tool overrides over the stored config and fanning MCP adapters
// out into their concrete tools.
func (r *Resolver) resolveAgentTools(ctx context.Context, a *AgentConfig, groupIDs []string) ([]ResolvedTool, error) {
	if len(a.Tools) == 0 {
		return nil, nil
	}
	resolved := make([]ResolvedTool, 0, len(a.Tools))
	for _, ref := range a.Tools {
		rec, err := r.tools.Resolve(ctx, ref, groupIDs)
		if err != nil {
			return nil, err
		}
		config := mergeToolConfig(rec.Config, a.ToolConfigs[rec.Name])

		if rec.Kind == "mcp" {
			resolved = append(resolved, fanOutMCP(rec, config)...)
			continue
		}
		resolved = append(resolved, ResolvedTool{
			Name:   rec.Name,
			Kind:   rec.Kind,
			Config: config,
		})
	}
	return resolved, nil
}

// fanOutMCP expands an MCP adapter record into one ResolvedTool per concrete
// tool the server advertises (config["tools"]). An adapter with no advertised
// tools contributes itself, so misconfigured servers fail at call time with a
// useful name rather than silently resolving to nothing.
func fanOutMCP(rec *ent.ToolRecord, config map[string]interface{}) []ResolvedTool {
	advertised, _ := config["tools"].([]interface{})
	if len(advertised) == 0 {
		return []ResolvedTool{{Name: rec.Name, Kind: "mcp", Config: config}}
	}
	out := make([]ResolvedTool, 0, len(advertised))
	for _, raw := range advertised {
		spec, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := spec["name"].(string)
		if name == "" {
			continue
		}
		toolCfg := map[string]interface{}{
			"server": rec.Name,
		}
		for k, v := range spec {
			toolCfg[k] = v
		}
		out = append(out, ResolvedTool{
			Name:   fmt.Sprintf("%s.%s", rec.Name, name),
			Kind:   "mcp",
			Config: toolCfg,
		})
	}
	return out
}

// mergeToolConfig lays the agent override over the stored config, key by key.
func mergeToolConfig(stored, override map[string]interface{}) map[string]interface{} {
	if len(stored) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(map[string]interface{}, len(stored)+len(override))
	for k, v := range stored {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// resolveFlow loads the persisted flow record when the config references one
// and applies the starting-point precedence rules. A flow with zero starting
// points after resolution is a configuration error.
func (r *Resolver) resolveFlow(ctx context.Context, flow *FlowConfig, groupIDs []string, override []string) error {
	if flow.FlowID != "" && len(flow.Nodes) == 0 {
		rec, err := r.flows.Get(ctx, flow.FlowID, groupIDs)
		if err != nil {
			return err
		}
		hydrateFlow(flow, rec)
	}

	if override != nil {
		slog.Info("Using request starting points over persisted flow record",
			"flow_id", flow.FlowID, "count", len(override))
		flow.StartingPoints = override
	}

	if len(flow.StartingPoints) == 0 {
		return fmt.Errorf("%w: flow has zero starting points", services.ErrInvalidConfig)
	}
	nodes := make(map[string]bool, len(flow.Nodes))
	for _, n := range flow.Nodes {
		nodes[n.ID] = true
	}
	for _, sp := range flow.StartingPoints {
		if !nodes[sp] {
			return fmt.Errorf("%w: starting point %q is not a flow node", services.ErrInvalidConfig, sp)
		}
	}
	return nil
}

// hydrateFlow copies a persisted flow record into the config shape.
func hydrateFlow(flow *FlowConfig, rec *ent.FlowRecord) {
	for _, raw := range rec.Nodes {
		node := FlowNode{}
		if id, ok := raw["id"].(string); ok {
			node.ID = id
		}
		if t, ok := raw["type"].(string); ok {
			node.Type = t
		}
		if tid, ok := raw["task_id"].(string); ok {
			node.TaskID = tid
		}
		flow.Nodes = append(flow.Nodes, node)
	}
	for _, raw := range rec.Edges {
		edge := FlowEdge{}
		if f, ok := raw["from"].(string); ok {
			edge.From = f
		}
		if t, ok := raw["to"].(string); ok {
			edge.To = t
		}
		flow.Edges = append(flow.Edges, edge)
	}
	flow.StartingPoints = append(flow.StartingPoints, rec.StartingPoints...)
}
