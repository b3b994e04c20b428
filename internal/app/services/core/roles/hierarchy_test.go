package roles

import (
	"telecare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHierarchy_Rank(t *testing.T) {
	h := NewHierarchy(DefaultRanks())

	assert.Equal(t, 4, h.Rank(constvars.RoleSuperadmin))
	assert.Equal(t, 3, h.Rank(constvars.RoleAdmin))
	assert.Equal(t, 2, h.Rank(constvars.RoleDoctor))
	assert.Equal(t, 2, h.Rank(constvars.RolePatient))
	assert.Equal(t, 2, h.Rank(constvars.RolePharmacy))
	assert.Equal(t, 1, h.Rank(constvars.RoleSupport))
	assert.Equal(t, 0, h.Rank(constvars.RoleName("JANITOR")), "unknown roles rank lowest")
	assert.Equal(t, 0, h.Rank(""))
}

func TestHierarchy_AtLeast(t *testing.T) {
	h := NewHierarchy(DefaultRanks())

	t.Run("reflexive for every role", func(t *testing.T) {
		for _, role := range constvars.AllRoles {
			assert.True(t, h.AtLeast(role, role), "%s should be at least itself", role)
		}
	})

	t.Run("higher ranks satisfy every lower role", func(t *testing.T) {
		chain := [][]constvars.RoleName{
			{constvars.RoleSuperadmin},
			{constvars.RoleAdmin},
			{constvars.RoleDoctor, constvars.RolePatient, constvars.RolePharmacy},
			{constvars.RoleSupport},
		}
		for i, tier := range chain {
			for _, lowerTier := range chain[i+1:] {
				for _, higher := range tier {
					for _, lower := range lowerTier {
						assert.True(t, h.AtLeast(higher, lower), "%s should be at least %s", higher, lower)
						assert.False(t, h.AtLeast(lower, higher), "%s should not be at least %s", lower, higher)
					}
				}
			}
		}
	})

	t.Run("peers satisfy each other", func(t *testing.T) {
		assert.True(t, h.AtLeast(constvars.RoleDoctor, constvars.RolePatient))
		assert.True(t, h.AtLeast(constvars.RolePharmacy, constvars.RoleDoctor))
	})

	t.Run("unknown role fails closed", func(t *testing.T) {
		assert.False(t, h.AtLeast("JANITOR", constvars.RoleSupport))
	})
}

func TestNewHierarchy_CopiesInput(t *testing.T) {
	ranks := DefaultRanks()
	h := NewHierarchy(ranks)
	ranks[constvars.RoleSupport] = 99

	assert.Equal(t, 1, h.Rank(constvars.RoleSupport), "hierarchy must not observe later mutation of its input")
}

func TestHierarchy_Roles(t *testing.T) {
	t.Run("default table ordered by rank then name", func(t *testing.T) {
		assert.Equal(t, []constvars.RoleName{
			constvars.RoleSuperadmin,
			constvars.RoleAdmin,
			constvars.RoleDoctor,
			constvars.RolePatient,
			constvars.RolePharmacy,
			constvars.RoleSupport,
		}, NewHierarchy(DefaultRanks()).Roles())
	})

	t.Run("roles outside the built-in set are listed", func(t *testing.T) {
		ranks := DefaultRanks()
		ranks["AUDITOR"] = 3
		assert.Equal(t, []constvars.RoleName{
			constvars.RoleSuperadmin,
			constvars.RoleAdmin,
			"AUDITOR",
			constvars.RoleDoctor,
			constvars.RolePatient,
			constvars.RolePharmacy,
			constvars.RoleSupport,
		}, NewHierarchy(ranks).Roles())
	})
}
