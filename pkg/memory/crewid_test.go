package memory

import (
	"strings"
	"testing"

	"github.com/kasal-project/kasal/pkg/crew"
	"github.com/stretchr/testify/assert"
)

func baseConfig() crew.Config {
	return crew.Config{
		Name:  "research-crew",
		Model: "gpt-4o",
		Agents: []crew.AgentConfig{
			{Role: "researcher"},
			{Role: "writer"},
		},
		Tasks: []crew.TaskConfig{
			{ID: "t1"},
			{ID: "t2"},
		},
	}
}

func TestCrewID_Deterministic(t *testing.T) {
	a := CrewID(baseConfig(), "run-1", "team-a")
	b := CrewID(baseConfig(), "run-1", "team-a")
	assert.Equal(t, a, b)
}

func TestCrewID_Shape(t *testing.T) {
	id := CrewID(baseConfig(), "run-1", "team-a")
	assert.True(t, strings.HasPrefix(id, "team-a_"))
	assert.Len(t, strings.TrimPrefix(id, "team-a_"), 8)
}

func TestCrewID_OrderInsensitive(t *testing.T) {
	// Declaration order of agents and tasks must not change identity.
	shuffled := baseConfig()
	shuffled.Agents = []crew.AgentConfig{{Role: "writer"}, {Role: "researcher"}}
	shuffled.Tasks = []crew.TaskConfig{{ID: "t2"}, {ID: "t1"}}

	assert.Equal(t,
		CrewID(baseConfig(), "run-1", "team-a"),
		CrewID(shuffled, "run-1", "team-a"))
}

func TestCrewID_DistinguishesIdentityInputs(t *testing.T) {
	base := CrewID(baseConfig(), "run-1", "team-a")

	otherGroup := CrewID(baseConfig(), "run-1", "team-b")
	assert.NotEqual(t, base, otherGroup, "groups never share a collection")

	otherRun := CrewID(baseConfig(), "run-2", "team-a")
	assert.NotEqual(t, base, otherRun)

	otherModel := baseConfig()
	otherModel.Model = "gpt-5"
	assert.NotEqual(t, base, CrewID(otherModel, "run-1", "team-a"))

	otherAgents := baseConfig()
	otherAgents.Agents = append(otherAgents.Agents, crew.AgentConfig{Role: "reviewer"})
	assert.NotEqual(t, base, CrewID(otherAgents, "run-1", "team-a"))
}
