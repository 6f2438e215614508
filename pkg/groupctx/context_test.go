package groupctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalWorkspaceID(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{
			name:     "simple email",
			email:    "alice@example.com",
			expected: "user_alice_example_com",
		},
		{
			name:     "uppercase is lowered",
			email:    "Alice.Smith@Example.COM",
			expected: "user_alice_smith_example_com",
		},
		{
			name:     "plus addressing",
			email:    "bob+test@example.com",
			expected: "user_bob_test_example_com",
		},
		{
			name:     "digits survive",
			email:    "user42@host1.io",
			expected: "user_user42_host1_io",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PersonalWorkspaceID(tt.email))
		})
	}
}

func TestPersonalWorkspaceID_Deterministic(t *testing.T) {
	// Same email must always map to the same workspace id.
	a := PersonalWorkspaceID("carol@example.com")
	b := PersonalWorkspaceID("carol@example.com")
	assert.Equal(t, a, b)
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "example.com", EmailDomain("alice@example.com"))
	assert.Equal(t, "", EmailDomain("no-at-sign"))
	assert.Equal(t, "", EmailDomain("trailing@"))
}

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.Stronger(RoleEditor))
	assert.True(t, RoleEditor.Stronger(RoleOperator))
	assert.True(t, RoleAdmin.Stronger(RoleOperator))
	assert.False(t, RoleOperator.Stronger(RoleAdmin))
	assert.False(t, RoleAdmin.Stronger(RoleAdmin))

	// Unknown roles rank below everything.
	assert.True(t, RoleOperator.Stronger(Role("viewer")))
}

func TestGroupContext_Primary(t *testing.T) {
	gc := &GroupContext{
		GroupIDs:   []string{"team-a", "team-b"},
		GroupEmail: "alice@example.com",
	}
	assert.Equal(t, "team-a", gc.PrimaryGroupID())
	assert.True(t, gc.IsValid())
	assert.False(t, gc.IsPersonalWorkspace())
}

func TestGroupContext_PersonalWorkspace(t *testing.T) {
	gc := &GroupContext{
		GroupIDs:   []string{PersonalWorkspaceID("alice@example.com")},
		GroupEmail: "alice@example.com",
	}
	assert.True(t, gc.IsPersonalWorkspace())
}

func TestGroupContext_Invalid(t *testing.T) {
	var nilGC *GroupContext
	assert.False(t, nilGC.IsValid())
	assert.Equal(t, "", nilGC.PrimaryGroupID())

	assert.False(t, (&GroupContext{GroupEmail: "a@b.c"}).IsValid())
	assert.False(t, (&GroupContext{GroupIDs: []string{"g"}}).IsValid())
}

func TestContextRoundTrip(t *testing.T) {
	gc := &GroupContext{
		GroupIDs:   []string{"team-a"},
		GroupEmail: "alice@example.com",
		UserRole:   RoleEditor,
	}

	ctx := WithContext(context.Background(), gc)
	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Same(t, gc, got)

	assert.Nil(t, FromContext(context.Background()))
}
