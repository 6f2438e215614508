package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/enginesetting"
)

// EngineName is the engine whose settings gate debug-only trace persistence.
const EngineName = "crewai"

// DebugTracingKey toggles persistence of verbose trace event types
// (memory read/write, knowledge retrieval, agent reasoning, guardrails).
const DebugTracingKey = "crewai_debug_tracing"

// EngineService reads and writes per-engine configuration flags.
// Callers that poll a flag per event (the trace writer) cache the value
// themselves; this service always hits the database.
type EngineService struct {
	client *ent.Client
}

// NewEngineService creates a new EngineService.
func NewEngineService(client *ent.Client) *EngineService {
	return &EngineService{client: client}
}

// GetBool returns a boolean engine setting, or fallback when unset.
func (s *EngineService) GetBool(ctx context.Context, engine, key string, fallback bool) (bool, error) {
	setting, err := s.client.EngineSetting.Query().
		Where(
			enginesetting.EngineEQ(engine),
			enginesetting.KeyEQ(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fallback, nil
		}
		return fallback, fmt.Errorf("failed to read engine setting: %w", err)
	}
	v, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return fallback, nil
	}
	return v, nil
}

// SetBool upserts a boolean engine setting.
func (s *EngineService) SetBool(ctx context.Context, engine, key string, value bool) error {
	err := s.client.EngineSetting.Create().
		SetEngine(engine).
		SetKey(key).
		SetValue(strconv.FormatBool(value)).
		OnConflictColumns(enginesetting.FieldEngine, enginesetting.FieldKey).
		UpdateValue().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set engine setting: %w", err)
	}
	return nil
}
