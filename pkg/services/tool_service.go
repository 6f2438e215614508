package services

import (
	"context"
	"fmt"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/toolrecord"
)

// ToolService is the group-filtered tool repository the crew builder resolves
// tool references against. References may be numeric ids (as strings) or
// tool names — both resolve within the caller's groups only.
type ToolService struct {
	client *ent.Client
}

// NewToolService creates a new ToolService.
func NewToolService(client *ent.Client) *ToolService {
	return &ToolService{client: client}
}

// Resolve returns the enabled tool record for a reference, or ErrNotFound.
func (s *ToolService) Resolve(ctx context.Context, ref string, groupIDs []string) (*ent.ToolRecord, error) {
	if len(groupIDs) == 0 {
		return nil, ErrSecurityViolation
	}
	if ref == "" {
		return nil, NewValidationError("tool", "empty reference")
	}

	rec, err := s.client.ToolRecord.Query().
		Where(
			toolrecord.GroupIDIn(groupIDs...),
			toolrecord.EnabledEQ(true),
			toolrecord.NameEQ(ref),
		).
		First(ctx)
	if err == nil {
		return rec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to resolve tool %q: %w", ref, err)
	}

	// Not a name — try the numeric id form.
	id, convErr := parseToolID(ref)
	if convErr != nil {
		return nil, fmt.Errorf("%w: unresolvable tool %q", ErrInvalidConfig, ref)
	}
	rec, err = s.client.ToolRecord.Query().
		Where(
			toolrecord.GroupIDIn(groupIDs...),
			toolrecord.EnabledEQ(true),
			toolrecord.IDEQ(id),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: unresolvable tool %q", ErrInvalidConfig, ref)
		}
		return nil, fmt.Errorf("failed to resolve tool %q: %w", ref, err)
	}
	return rec, nil
}

// parseToolID converts a string reference to a tool row id.
func parseToolID(ref string) (int, error) {
	var id int
	_, err := fmt.Sscanf(ref, "%d", &id)
	return id, err
}
