package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/groupmembership"
	"github.com/kasal-project/kasal/ent/user"
	"github.com/kasal-project/kasal/pkg/groupctx"
)

// GroupService resolves forwarded identity into a GroupContext.
// Resolution happens once at API entry; the result is carried as an ambient
// context value from there on and never reconstructed downstream.
type GroupService struct {
	client *ent.Client
}

// NewGroupService creates a new GroupService.
func NewGroupService(client *ent.Client) *GroupService {
	return &GroupService{client: client}
}

// Resolve derives the GroupContext for a request.
//
// Rules:
//   - email is required; without it there is no tenant identity.
//   - A user with no memberships gets a personal workspace derived from the
//     email. A requested personal-workspace id that does not match the
//     requesting email exactly is a hard authorization failure.
//   - An explicitly requested group must be a membership or the user's own
//     personal workspace; it becomes GroupIDs[0].
//   - highest_role is the strongest role over all memberships. The personal
//     workspace grants admin over itself without escalating any other group.
func (s *GroupService) Resolve(ctx context.Context, email, accessToken, requestedGroup string) (*groupctx.GroupContext, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}

	usr, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return nil, err
	}

	memberships, err := s.client.GroupMembership.Query().
		Where(groupmembership.UserIDEQ(usr.ID)).
		Order(ent.Asc(groupmembership.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}

	personalID := groupctx.PersonalWorkspaceID(email)

	groupIDs := make([]string, 0, len(memberships)+1)
	highest := groupctx.RoleOperator
	for _, m := range memberships {
		groupIDs = append(groupIDs, m.GroupID)
		if groupctx.Role(m.Role).Stronger(highest) {
			highest = groupctx.Role(m.Role)
		}
	}
	if len(groupIDs) == 0 {
		// No real memberships: synthesize the personal workspace. The user is
		// admin of their own private data.
		groupIDs = append(groupIDs, personalID)
		highest = groupctx.RoleAdmin
	}

	selectedRole := highest
	if requestedGroup != "" {
		groupIDs, selectedRole, err = s.selectGroup(requestedGroup, personalID, groupIDs, memberships, highest)
		if err != nil {
			return nil, err
		}
	}

	return &groupctx.GroupContext{
		GroupIDs:    groupIDs,
		GroupEmail:  email,
		EmailDomain: groupctx.EmailDomain(email),
		UserID:      usr.ID,
		AccessToken: accessToken,
		UserRole:    selectedRole,
		HighestRole: highest,
	}, nil
}

// selectGroup validates an explicit group request and moves it to the front.
func (s *GroupService) selectGroup(requested, personalID string, groupIDs []string, memberships []*ent.GroupMembership, highest groupctx.Role) ([]string, groupctx.Role, error) {
	if requested == personalID {
		// Personal workspace: authorization uses highest_role, data filtering
		// uses the workspace id only.
		return []string{personalID}, highest, nil
	}
	if len(requested) >= len(groupctx.PersonalWorkspacePrefix) &&
		requested[:len(groupctx.PersonalWorkspacePrefix)] == groupctx.PersonalWorkspacePrefix {
		// A personal-workspace id for someone else's email. Spoofing attempt.
		return nil, "", ErrForbidden
	}

	for _, m := range memberships {
		if m.GroupID == requested {
			ordered := make([]string, 0, len(groupIDs))
			ordered = append(ordered, requested)
			for _, id := range groupIDs {
				if id != requested {
					ordered = append(ordered, id)
				}
			}
			return ordered, groupctx.Role(m.Role), nil
		}
	}
	return nil, "", ErrForbidden
}

// findOrCreateUser returns the user record for an email, creating it on first sight.
func (s *GroupService) findOrCreateUser(ctx context.Context, email string) (*ent.User, error) {
	usr, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err == nil {
		return usr, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	usr, err = s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race — the row exists now.
			return s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return usr, nil
}
