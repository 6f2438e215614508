package crew

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kasal-project/kasal/pkg/llm"
	"github.com/kasal-project/kasal/pkg/services"
)

// LLMConfigurer resolves a model name and temperature into a bound client.
// Satisfied by llm.Manager.
type LLMConfigurer interface {
	Configure(model string, temperature float64) (llm.Client, error)
}

// VolumeRef identifies a file inside a Databricks Unity Catalog volume.
type VolumeRef struct {
	Catalog string `json:"catalog"`
	Schema  string `json:"schema"`
	Volume  string `json:"volume"`
	Path    string `json:"path"`
}

// KnowledgeSource is one parsed knowledge source attachment. Volume is set
// when the raw path addresses a Databricks volume; otherwise the source
// degrades to the plain path string.
type KnowledgeSource struct {
	Raw    string     `json:"raw"`
	Volume *VolumeRef `json:"volume,omitempty"`
}

// volumePrefix marks Databricks Unity Catalog volume paths.
const volumePrefix = "/Volumes/"

// ParseKnowledgeSource classifies one raw knowledge source path. Under the
// volume prefix, the first three segments identify catalog.schema.volume and
// the remainder is the file path.
func ParseKnowledgeSource(raw string) KnowledgeSource {
	ks := KnowledgeSource{Raw: raw}
	if !strings.HasPrefix(raw, volumePrefix) {
		return ks
	}
	parts := strings.Split(strings.TrimPrefix(raw, volumePrefix), "/")
	if len(parts) < 4 {
		return ks
	}
	ks.Volume = &VolumeRef{
		Catalog: parts[0],
		Schema:  parts[1],
		Volume:  parts[2],
		Path:    strings.Join(parts[3:], "/"),
	}
	return ks
}

// Built is a fully constructed crew ready for kickoff, plus the parsed
// attachments the worker wires up before running.
type Built struct {
	Orchestrator Orchestrator
	Knowledge    map[string][]KnowledgeSource // agent role → sources
}

// Builder constructs orchestrators from resolver-materialized configs.
// Runs worker-side: no database access, everything comes from the Config.
type Builder struct {
	llms LLMConfigurer
}

// NewBuilder creates a builder over an LLM configurer.
func NewBuilder(llms LLMConfigurer) *Builder {
	return &Builder{llms: llms}
}

// Build binds each agent to its LLM client and assembles the sequential
// orchestrator. jobID tags downstream LLM calls. memory may be zero.
func (b *Builder) Build(jobID string, cfg Config, memory MemorySet) (*Built, error) {
	if len(cfg.Agents) == 0 {
		return nil, fmt.Errorf("%w: crew has no agents", services.ErrInvalidConfig)
	}
	if cfg.Flow != nil && len(cfg.Flow.StartingPoints) == 0 {
		return nil, fmt.Errorf("%w: flow has zero starting points", services.ErrInvalidConfig)
	}

	eng := &engine{
		name:   cfg.Name,
		agents: make(map[string]*boundAgent, len(cfg.Agents)),
		tasks:  cfg.Tasks,
		flow:   cfg.Flow,
		memory: memory,
		bus:    &Bus{},
		stopCh: make(chan struct{}),
		jobID:  jobID,
	}

	knowledge := make(map[string][]KnowledgeSource)
	for _, a := range cfg.Agents {
		// Code execution is disabled by policy, whatever the config says.
		a.AllowCodeExecution = false

		client, err := b.bindLLM(a, cfg.Model)
		if err != nil {
			return nil, err
		}
		eng.agents[a.Role] = &boundAgent{cfg: a, client: client}
		eng.agentOrder = append(eng.agentOrder, a.Role)

		for _, raw := range a.KnowledgeSources {
			knowledge[a.Role] = append(knowledge[a.Role], ParseKnowledgeSource(raw))
		}
	}

	eng.knowledge = knowledge
	return &Built{Orchestrator: eng, Knowledge: knowledge}, nil
}

// bindLLM resolves an agent's llm field — a model-name string, a full
// binding object, or absent — into a configured client. Temperatures arrive
// on a 0–100 scale and are normalized before configuration.
func (b *Builder) bindLLM(a AgentConfig, defaultModel string) (llm.Client, error) {
	model := defaultModel
	temp := a.Temperature

	if len(a.LLM) > 0 {
		var name string
		if err := json.Unmarshal(a.LLM, &name); err == nil {
			model = name
		} else {
			var binding LLMBinding
			if err := json.Unmarshal(a.LLM, &binding); err != nil {
				return nil, fmt.Errorf("%w: agent %q has malformed llm binding", services.ErrInvalidConfig, a.Role)
			}
			if binding.Model != "" {
				model = binding.Model
			}
			if binding.Temperature != nil {
				temp = binding.Temperature
			}
		}
	}

	if model == "" {
		return nil, fmt.Errorf("%w: agent %q has no model and the crew has no default", services.ErrInvalidConfig, a.Role)
	}

	temperature := -1.0
	if temp != nil {
		temperature = float64(*temp) / 100.0
	}
	client, err := b.llms.Configure(model, temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to configure llm for agent %q: %w", a.Role, err)
	}
	return client, nil
}
