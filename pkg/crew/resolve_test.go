package crew

import (
	"context"
	"testing"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) (*Resolver, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewResolver(
		services.NewToolService(client),
		services.NewFlowService(client),
		services.NewMemoryConfigService(client),
	), client
}

func resolverGroup() *groupctx.GroupContext {
	return &groupctx.GroupContext{
		GroupIDs:   []string{"team-a"},
		GroupEmail: "alice@example.com",
	}
}

func validConfig() Config {
	return Config{
		Name:   "crew",
		Model:  "gpt-4o",
		Agents: []AgentConfig{{Role: "researcher"}},
		Tasks:  []TaskConfig{{ID: "t1", Description: "research"}},
	}
}

func TestResolver_Validation(t *testing.T) {
	r, _ := newResolver(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no agents", func(c *Config) { c.Agents = nil }},
		{"empty role", func(c *Config) { c.Agents[0].Role = "" }},
		{"neither tasks nor flow", func(c *Config) { c.Tasks = nil }},
		{"task without description", func(c *Config) { c.Tasks[0].Description = "" }},
		{"task references unknown agent", func(c *Config) { c.Tasks[0].Agent = "ghost" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := r.Resolve(ctx, &cfg, resolverGroup(), nil)
			assert.ErrorIs(t, err, services.ErrInvalidConfig)
		})
	}

	t.Run("invalid group context", func(t *testing.T) {
		cfg := validConfig()
		err := r.Resolve(ctx, &cfg, &groupctx.GroupContext{}, nil)
		assert.ErrorIs(t, err, services.ErrSecurityViolation)
	})
}

func TestResolver_Tools(t *testing.T) {
	r, client := newResolver(t)
	ctx := context.Background()

	_, err := client.ToolRecord.Create().
		SetName("web_search").
		SetGroupID("team-a").
		SetConfig(map[string]interface{}{"depth": float64(1), "safe": true}).
		Save(ctx)
	require.NoError(t, err)

	cfg := validConfig()
	cfg.Agents[0].Tools = []string{"web_search"}
	cfg.Agents[0].ToolConfigs = map[string]map[string]interface{}{
		"web_search": {"depth": float64(3)},
	}

	require.NoError(t, r.Resolve(ctx, &cfg, resolverGroup(), nil))

	resolved := cfg.Agents[0].ResolvedTools
	require.Len(t, resolved, 1)
	assert.Equal(t, "web_search", resolved[0].Name)
	assert.Equal(t, float64(3), resolved[0].Config["depth"], "agent override wins")
	assert.Equal(t, true, resolved[0].Config["safe"], "stored keys survive the merge")

	t.Run("unresolvable tool", func(t *testing.T) {
		bad := validConfig()
		bad.Agents[0].Tools = []string{"no_such_tool"}
		err := r.Resolve(ctx, &bad, resolverGroup(), nil)
		assert.ErrorIs(t, err, services.ErrInvalidConfig)
	})
}

func TestResolver_MCPFanOut(t *testing.T) {
	r, client := newResolver(t)
	ctx := context.Background()

	_, err := client.ToolRecord.Create().
		SetName("github").
		SetGroupID("team-a").
		SetKind("mcp").
		SetConfig(map[string]interface{}{
			"url": "http://mcp.local",
			"tools": []interface{}{
				map[string]interface{}{"name": "list_issues"},
				map[string]interface{}{"name": "create_pr", "scope": "write"},
			},
		}).
		Save(ctx)
	require.NoError(t, err)

	cfg := validConfig()
	cfg.Agents[0].Tools = []string{"github"}
	require.NoError(t, r.Resolve(ctx, &cfg, resolverGroup(), nil))

	resolved := cfg.Agents[0].ResolvedTools
	require.Len(t, resolved, 2, "one tool per advertised MCP entry")
	assert.Equal(t, "github.list_issues", resolved[0].Name)
	assert.Equal(t, "mcp", resolved[0].Kind)
	assert.Equal(t, "github", resolved[0].Config["server"])
	assert.Equal(t, "github.create_pr", resolved[1].Name)
	assert.Equal(t, "write", resolved[1].Config["scope"])
}

func TestResolver_Flow(t *testing.T) {
	r, client := newResolver(t)
	ctx := context.Background()

	_, err := client.FlowRecord.Create().
		SetID("flow-1").
		SetGroupID("team-a").
		SetName("pipeline").
		SetNodes([]map[string]interface{}{
			{"id": "n1", "task_id": "t1"},
			{"id": "n2", "task_id": "t1"},
		}).
		SetEdges([]map[string]interface{}{{"from": "n1", "to": "n2"}}).
		SetStartingPoints([]string{"n1"}).
		Save(ctx)
	require.NoError(t, err)

	t.Run("hydrates from the persisted record", func(t *testing.T) {
		cfg := validConfig()
		cfg.Flow = &FlowConfig{FlowID: "flow-1"}
		require.NoError(t, r.Resolve(ctx, &cfg, resolverGroup(), nil))

		require.Len(t, cfg.Flow.Nodes, 2)
		assert.Equal(t, "n1", cfg.Flow.Nodes[0].ID)
		assert.Equal(t, []string{"n1"}, cfg.Flow.StartingPoints)
	})

	t.Run("request starting points override the record", func(t *testing.T) {
		cfg := validConfig()
		cfg.Flow = &FlowConfig{FlowID: "flow-1"}
		require.NoError(t, r.Resolve(ctx, &cfg, resolverGroup(), []string{"n2"}))
		assert.Equal(t, []string{"n2"}, cfg.Flow.StartingPoints)
	})

	t.Run("starting point must be a node", func(t *testing.T) {
		cfg := validConfig()
		cfg.Flow = &FlowConfig{FlowID: "flow-1"}
		err := r.Resolve(ctx, &cfg, resolverGroup(), []string{"n9"})
		assert.ErrorIs(t, err, services.ErrInvalidConfig)
	})

	t.Run("foreign flow reads as not found", func(t *testing.T) {
		cfg := validConfig()
		cfg.Flow = &FlowConfig{FlowID: "flow-1"}
		gc := &groupctx.GroupContext{GroupIDs: []string{"team-b"}, GroupEmail: "eve@example.com"}
		err := r.Resolve(ctx, &cfg, gc, nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestResolver_MemoryProfile(t *testing.T) {
	r, client := newResolver(t)
	ctx := context.Background()

	t.Run("nil when no config", func(t *testing.T) {
		profile, err := r.MemoryProfile(ctx, "team-a")
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	_, err := client.MemoryConfig.Create().
		SetGroupID("team-a").
		SetBackendType("databricks").
		SetLongTermEnabled(false).
		SetDatabricks(map[string]interface{}{"endpoint": "vs-endpoint"}).
		SetIsActive(true).
		Save(ctx)
	require.NoError(t, err)

	profile, err := r.MemoryProfile(ctx, "team-a")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "databricks", profile.BackendType)
	assert.True(t, profile.ShortTermEnabled)
	assert.False(t, profile.LongTermEnabled)
	assert.Equal(t, "vs-endpoint", profile.Databricks["endpoint"])
}
