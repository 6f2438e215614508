// Package memory attaches per-crew storage (short-term, long-term, entity)
// to a stable crew identity. Identity is deterministic per (config, group):
// the same crew run twice in one group reuses its memory, and two groups
// never share a collection.
package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/kasal-project/kasal/pkg/crew"
)

// CrewID derives the stable crew identity: sorted agent roles, sorted task
// identifiers, crew name, model and run name, canonicalized and hashed,
// truncated to 8 hex chars and prefixed with the group id.
func CrewID(cfg crew.Config, runName, groupID string) string {
	roles := make([]string, len(cfg.Agents))
	for i, a := range cfg.Agents {
		roles[i] = a.Role
	}
	sort.Strings(roles)

	taskIDs := make([]string, len(cfg.Tasks))
	for i, t := range cfg.Tasks {
		taskIDs[i] = t.ID
	}
	sort.Strings(taskIDs)

	canonical := strings.Join([]string{
		strings.Join(roles, ","),
		strings.Join(taskIDs, ","),
		cfg.Name,
		cfg.Model,
		runName,
		groupID,
	}, "|")

	sum := sha256.Sum256([]byte(canonical))
	return groupID + "_" + hex.EncodeToString(sum[:])[:8]
}
