package services_test

import (
	"context"
	"testing"

	"github.com/kasal-project/kasal/ent"
	"github.com/kasal-project/kasal/ent/groupmembership"
	"github.com/kasal-project/kasal/pkg/groupctx"
	"github.com/kasal-project/kasal/pkg/services"
	"github.com/kasal-project/kasal/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedMembership creates the group (and user, on first sight) behind a
// membership row. Users are keyed by email so tests can pre-wire memberships
// for identities Resolve has not seen yet.
func seedMembership(t *testing.T, client *ent.Client, email, userID, groupID string, role groupmembership.Role) {
	t.Helper()
	ctx := context.Background()

	_, err := client.Group.Create().
		SetID(groupID).
		SetName(groupID).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		require.NoError(t, err)
	}

	_, err = client.User.Create().
		SetID(userID).
		SetEmail(email).
		Save(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		require.NoError(t, err)
	}

	_, err = client.GroupMembership.Create().
		SetUserID(userID).
		SetGroupID(groupID).
		SetRole(role).
		Save(ctx)
	require.NoError(t, err)
}

func TestGroupService_Resolve_PersonalWorkspace(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewGroupService(client)
	ctx := context.Background()

	gc, err := svc.Resolve(ctx, "Alice.Smith@Example.com", "tok-1", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"user_alice_smith_example_com"}, gc.GroupIDs)
	assert.True(t, gc.IsPersonalWorkspace())
	assert.Equal(t, groupctx.RoleAdmin, gc.HighestRole, "a user is admin of their own workspace")
	assert.Equal(t, "tok-1", gc.AccessToken)
	assert.Equal(t, "Example.com", gc.EmailDomain)

	t.Run("user row is created on first sight and reused after", func(t *testing.T) {
		again, err := svc.Resolve(ctx, "Alice.Smith@Example.com", "", "")
		require.NoError(t, err)
		assert.Equal(t, gc.UserID, again.UserID)

		n, err := client.User.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "", "", "")
		assert.True(t, services.IsValidationError(err))
	})
}

func TestGroupService_Resolve_Memberships(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewGroupService(client)
	ctx := context.Background()

	seedMembership(t, client, "bob@example.com", "u-bob", "team-a", groupmembership.RoleOperator)
	seedMembership(t, client, "bob@example.com", "u-bob", "team-b", groupmembership.RoleEditor)

	gc, err := svc.Resolve(ctx, "bob@example.com", "", "")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"team-a", "team-b"}, gc.GroupIDs)
	assert.Equal(t, groupctx.RoleEditor, gc.HighestRole, "strongest role over all memberships")
	assert.False(t, gc.IsPersonalWorkspace())
}

func TestGroupService_Resolve_GroupSelection(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := services.NewGroupService(client)
	ctx := context.Background()

	seedMembership(t, client, "bob@example.com", "u-bob", "team-a", groupmembership.RoleAdmin)
	seedMembership(t, client, "bob@example.com", "u-bob", "team-b", groupmembership.RoleOperator)

	t.Run("selected group moves to the front with its own role", func(t *testing.T) {
		gc, err := svc.Resolve(ctx, "bob@example.com", "", "team-b")
		require.NoError(t, err)
		assert.Equal(t, "team-b", gc.PrimaryGroupID())
		assert.ElementsMatch(t, []string{"team-a", "team-b"}, gc.GroupIDs)
		assert.Equal(t, groupctx.RoleOperator, gc.UserRole, "role in the selected group, not the highest")
		assert.Equal(t, groupctx.RoleAdmin, gc.HighestRole)
	})

	t.Run("own personal workspace narrows to a single group", func(t *testing.T) {
		gc, err := svc.Resolve(ctx, "bob@example.com", "", "user_bob_example_com")
		require.NoError(t, err)
		assert.Equal(t, []string{"user_bob_example_com"}, gc.GroupIDs)
		assert.Equal(t, groupctx.RoleAdmin, gc.UserRole)
	})

	t.Run("someone else's personal workspace is refused", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "bob@example.com", "", "user_mallory_example_com")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("a group the user is not a member of is refused", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "bob@example.com", "", "team-z")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}
