package roles

import (
	"sort"
	"telecare-service/internal/pkg/constvars"
)

// DefaultRanks returns the rank table used by the service. Equal ranks are
// peers; a larger number outranks a smaller one.
func DefaultRanks() map[constvars.RoleName]int {
	return map[constvars.RoleName]int{
		constvars.RoleSuperadmin: 4,
		constvars.RoleAdmin:      3,
		constvars.RoleDoctor:     2,
		constvars.RolePatient:    2,
		constvars.RolePharmacy:   2,
		constvars.RoleSupport:    1,
	}
}

// Hierarchy answers ordinal "at least" questions over roles. It is read-only
// after construction.
type Hierarchy struct {
	ranks map[constvars.RoleName]int
}

func NewHierarchy(ranks map[constvars.RoleName]int) *Hierarchy {
	copied := make(map[constvars.RoleName]int, len(ranks))
	for role, rank := range ranks {
		copied[role] = rank
	}
	return &Hierarchy{ranks: copied}
}

// Rank returns 0 for roles outside the table.
func (h *Hierarchy) Rank(role constvars.RoleName) int {
	return h.ranks[role]
}

func (h *Hierarchy) AtLeast(role, minimum constvars.RoleName) bool {
	return h.Rank(role) >= h.Rank(minimum)
}

// Roles lists every role in the table, highest rank first and peers by name.
func (h *Hierarchy) Roles() []constvars.RoleName {
	roles := make([]constvars.RoleName, 0, len(h.ranks))
	for role := range h.ranks {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		if h.ranks[roles[i]] != h.ranks[roles[j]] {
			return h.ranks[roles[i]] > h.ranks[roles[j]]
		}
		return roles[i] < roles[j]
	})
	return roles
}
