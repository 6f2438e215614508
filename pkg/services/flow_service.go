package services

import (
	"context"
	"fmt"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/flowrecord"
)

// FlowService reads persisted flow definitions for the crew builder.
type FlowService struct {
	client *ent.Client
}

// NewFlowService creates a new FlowService.
func NewFlowService(client *ent.Client) *FlowService {
	return &FlowService{client: client}
}

// Get returns a flow record by id, group-filtered.
func (s *FlowService) Get(ctx context.Context, flowID string, groupIDs []string) (*ent.FlowRecord, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}
	rec, err := s.client.FlowRecord.Query().
		Where(
			flowrecord.IDEQ(flowID),
			flowrecord.GroupIDIn(groupIDs...),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flow: %w", err)
	}
	return rec, nil
}
