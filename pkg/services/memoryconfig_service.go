package services

import (
	"context"
	"fmt"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/memoryconfig"
)

// MemoryConfigService loads the active memory backend profile for a group.
type MemoryConfigService struct {
	client *ent.Client
}

// NewMemoryConfigService creates a new MemoryConfigService.
func NewMemoryConfigService(client *ent.Client) *MemoryConfigService {
	return &MemoryConfigService{client: client}
}

// Active returns the group's active memory config, or nil when none is set
// (callers fall back to the orchestration library's default memory).
func (s *MemoryConfigService) Active(ctx context.Context, groupID string) (*ent.MemoryConfig, error) {
	if groupID == "" {
		return nil, ErrSecurityViolation
	}
	cfg, err := s.client.MemoryConfig.Query().
		Where(
			memoryconfig.GroupIDEQ(groupID),
			memoryconfig.IsActiveEQ(true),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load memory config: %w", err)
	}
	return cfg, nil
}
