// Package crew materializes validated job configurations into runnable
// orchestrations: agents, tasks, resolved tools, LLM bindings, flow graphs.
//
// The package is split across the process boundary. The resolver runs in the
// server and turns database references (tool ids, flow ids, memory profiles)
// into primitives; the builder runs in the worker and constructs the
// orchestrator from those primitives alone.
package crew

import "encoding/json"

// Config is the complete, resolver-materialized description of one job.
// Every field is a primitive or a JSON-safe composite: the struct crosses
// the worker process boundary as the payload's crew_config.
type Config struct {
	Name   string        `json:"name"`
	Model  string        `json:"model,omitempty"` // default model for agents without an llm binding
	Agents []AgentConfig `json:"agents"`
	Tasks  []TaskConfig  `json:"tasks"`
	Flow   *FlowConfig   `json:"flow,omitempty"`
}

// AgentConfig describes one agent.
type AgentConfig struct {
	Role      string `json:"role"`
	Goal      string `json:"goal,omitempty"`
	Backstory string `json:"backstory,omitempty"`

	// LLM is either a model name (JSON string) or a full binding object.
	// Absent means "use the crew's default model".
	LLM json.RawMessage `json:"llm,omitempty"`

	// Temperature on the incoming 0–100 scale. Nil means provider default.
	Temperature *int `json:"temperature,omitempty"`

	// Tools are references (ids or names) before resolution; the resolver
	// replaces them with ResolvedTools.
	Tools []string `json:"tools,omitempty"`

	// ToolConfigs are per-agent overrides keyed by tool name, merged over
	// the group tool's stored config.
	ToolConfigs map[string]map[string]interface{} `json:"tool_configs,omitempty"`

	// ResolvedTools is populated by the resolver; empty until then.
	ResolvedTools []ResolvedTool `json:"resolved_tools,omitempty"`

	KnowledgeSources []string `json:"knowledge_sources,omitempty"`

	// AllowCodeExecution is accepted on input but ignored: code execution
	// is disabled by policy.
	AllowCodeExecution bool `json:"allow_code_execution,omitempty"`

	MaxIterations int `json:"max_iterations,omitempty"`
}

// LLMBinding is the object form of AgentConfig.LLM.
type LLMBinding struct {
	Model       string `json:"model"`
	Temperature *int   `json:"temperature,omitempty"` // 0–100 scale
}

// TaskConfig describes one task.
type TaskConfig struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	Description    string   `json:"description"`
	ExpectedOutput string   `json:"expected_output,omitempty"`
	Agent          string   `json:"agent"` // role of the executing agent
	Tools          []string `json:"tools,omitempty"`
	ContextTaskIDs []string `json:"context_task_ids,omitempty"`
}

// ResolvedTool is a concrete tool after repository resolution and per-agent
// config merge. MCP adapters fan out: one reference may yield several
// ResolvedTools.
type ResolvedTool struct {
	Name   string                 `json:"name"`
	Kind   string                 `json:"kind"` // builtin, mcp, databricks, powerbi
	Config map[string]interface{} `json:"config,omitempty"`
}

// FlowConfig is a higher-level DAG whose nodes reference crews or tasks.
type FlowConfig struct {
	FlowID         string     `json:"flow_id,omitempty"`
	Nodes          []FlowNode `json:"nodes"`
	Edges          []FlowEdge `json:"edges,omitempty"`
	StartingPoints []string   `json:"starting_points"`
}

// FlowNode is one node of a flow graph.
type FlowNode struct {
	ID     string `json:"id"`
	Type   string `json:"type,omitempty"` // "crew" or "task"
	TaskID string `json:"task_id,omitempty"`
}

// FlowEdge is a directed transition between flow nodes.
type FlowEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MemoryProfile is the resolver-materialized memory backend selection,
// shipped to the worker as primitives.
type MemoryProfile struct {
	BackendType string `json:"backend_type"` // "default", "databricks", "disabled"

	ShortTermEnabled bool `json:"short_term_enabled"`
	LongTermEnabled  bool `json:"long_term_enabled"`
	EntityEnabled    bool `json:"entity_enabled"`

	Embedder   map[string]interface{} `json:"embedder,omitempty"`
	Databricks map[string]interface{} `json:"databricks,omitempty"`
}

// Disabled reports whether the profile is the explicit "attach nothing,
// disable defaults too" selection.
func (p *MemoryProfile) Disabled() bool {
	if p == nil {
		return false
	}
	if p.BackendType == "disabled" {
		return true
	}
	return !p.ShortTermEnabled && !p.LongTermEnabled && !p.EntityEnabled
}
