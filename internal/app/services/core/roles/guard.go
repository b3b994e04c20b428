package roles

import (
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
)

// AccessGuard is the single place that decides whether a principal may do
// something. Every check fails closed on a nil principal.
type AccessGuard struct {
	hierarchy *Hierarchy
	matrix    *PermissionMatrix
}

func NewAccessGuard(hierarchy *Hierarchy, matrix *PermissionMatrix) *AccessGuard {
	return &AccessGuard{hierarchy: hierarchy, matrix: matrix}
}

func (g *AccessGuard) RequireAuthenticated(principal *models.Principal) error {
	if principal == nil {
		return exceptions.ErrUnauthenticated(nil)
	}
	return nil
}

func (g *AccessGuard) RequireAnyRole(principal *models.Principal, allowed ...constvars.RoleName) error {
	if principal == nil {
		return exceptions.ErrUnauthenticated(nil)
	}
	if containsRole(allowed, principal.Role) {
		return nil
	}
	return exceptions.ErrForbiddenRole(nil, principal.Role, allowed)
}

func (g *AccessGuard) RequireMinRank(principal *models.Principal, minimum constvars.RoleName) error {
	if principal == nil {
		return exceptions.ErrUnauthenticated(nil)
	}
	if g.hierarchy.AtLeast(principal.Role, minimum) {
		return nil
	}
	return exceptions.ErrForbiddenRank(nil, principal.Role, g.hierarchy.Rank(principal.Role), minimum, g.hierarchy.Rank(minimum))
}

func (g *AccessGuard) RequireOwnerOrElevated(principal *models.Principal, ownerID string) error {
	if principal == nil {
		return exceptions.ErrUnauthenticated(nil)
	}
	if ownerID != "" && principal.SubjectID == ownerID {
		return nil
	}
	if g.IsElevated(principal) {
		return nil
	}
	return exceptions.ErrForbiddenOwnership(nil, principal.Role, principal.SubjectID, ownerID)
}

func (g *AccessGuard) RequirePermission(principal *models.Principal, name string) error {
	if principal == nil {
		return exceptions.ErrUnauthenticated(nil)
	}
	if g.matrix.Has(principal.Role, name) {
		return nil
	}
	return exceptions.ErrForbiddenPermission(nil, principal.Role, name)
}

// IsElevated reports membership in the ADMIN/SUPERADMIN set, not a rank comparison.
func (g *AccessGuard) IsElevated(principal *models.Principal) bool {
	return principal != nil && containsRole(constvars.ElevatedRoles, principal.Role)
}

func containsRole(roles []constvars.RoleName, role constvars.RoleName) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
