// Package groupctx carries the resolved tenant identity for a request.
//
// A GroupContext is derived once at API entry (see services.GroupService),
// travels through async call chains as an ambient context value, and crosses
// the subprocess boundary as a primitive-only struct serialized into the
// worker payload. It is immutable after construction.
package groupctx

import (
	"context"
	"strings"
)

// Role is a group membership role. Ordering: admin > editor > operator.
type Role string

// Membership roles.
const (
	RoleAdmin    Role = "admin"
	RoleEditor   Role = "editor"
	RoleOperator Role = "operator"
)

// roleRank maps roles to their strength for highest-role computation.
var roleRank = map[Role]int{
	RoleAdmin:    3,
	RoleEditor:   2,
	RoleOperator: 1,
}

// Stronger reports whether a outranks b.
func (a Role) Stronger(b Role) bool {
	return roleRank[a] > roleRank[b]
}

// PersonalWorkspacePrefix prefixes every synthesized single-user group id.
const PersonalWorkspacePrefix = "user_"

// GroupContext is the request-scoped tenant identity.
// GroupIDs is ordered; element 0 is the primary (selected) group.
type GroupContext struct {
	GroupIDs    []string `json:"group_ids"`
	GroupEmail  string   `json:"group_email"`
	EmailDomain string   `json:"email_domain"`
	UserID      string   `json:"user_id"`
	AccessToken string   `json:"access_token,omitempty"`
	UserRole    Role     `json:"user_role"`
	HighestRole Role     `json:"highest_role"`
}

// PrimaryGroupID returns the selected group — the one stamped on new rows.
func (g *GroupContext) PrimaryGroupID() string {
	if g == nil || len(g.GroupIDs) == 0 {
		return ""
	}
	return g.GroupIDs[0]
}

// IsValid reports whether the context can authorize data access.
func (g *GroupContext) IsValid() bool {
	return g != nil && g.GroupEmail != "" && len(g.GroupIDs) > 0
}

// IsPersonalWorkspace reports whether the primary group is the user's
// synthesized single-member workspace.
func (g *GroupContext) IsPersonalWorkspace() bool {
	return strings.HasPrefix(g.PrimaryGroupID(), PersonalWorkspacePrefix)
}

// PersonalWorkspaceID derives the deterministic single-user group id for an
// email: lowercased, every character outside [a-z0-9] replaced with '_',
// prefixed "user_". The same email always yields the same id.
func PersonalWorkspaceID(email string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(email))
	return PersonalWorkspacePrefix + sanitized
}

// EmailDomain returns the domain part of an email, or "" if there is none.
func EmailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 && i < len(email)-1 {
		return email[i+1:]
	}
	return ""
}

// ctxKey is the private key type for ambient context binding.
type ctxKey struct{}

// WithContext binds a GroupContext as the ambient value on ctx.
func WithContext(ctx context.Context, gc *GroupContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, gc)
}

// FromContext returns the ambient GroupContext, or nil if none is bound.
func FromContext(ctx context.Context) *GroupContext {
	gc, _ := ctx.Value(ctxKey{}).(*GroupContext)
	return gc
}
