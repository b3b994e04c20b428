package roles

import (
	"errors"
	"fmt"
	"sort"
	"telecare-service/internal/pkg/constvars"
)

const (
	PermissionViewOwnProfile        = "viewOwnProfile"
	PermissionSendMessages          = "sendMessages"
	PermissionBookAppointment       = "bookAppointment"
	PermissionManageAvailability    = "manageAvailability"
	PermissionApproveAppointments   = "approveAppointments"
	PermissionViewPrescriptions     = "viewPrescriptions"
	PermissionWritePrescriptions    = "writePrescriptions"
	PermissionDispensePrescriptions = "dispensePrescriptions"
	PermissionViewAllUsers          = "viewAllUsers"
	PermissionViewAllAppointments   = "viewAllAppointments"
	PermissionSendBroadcast         = "sendBroadcast"
	PermissionManageAdmins          = "manageAdmins"
)

// DefaultGrants returns the static permission table. Rows are explicit: a role
// holds only what its own row lists.
func DefaultGrants() map[constvars.RoleName]map[string]bool {
	return map[constvars.RoleName]map[string]bool{
		constvars.RoleSuperadmin: {
			PermissionViewOwnProfile:        true,
			PermissionSendMessages:          true,
			PermissionBookAppointment:       true,
			PermissionManageAvailability:    true,
			PermissionApproveAppointments:   true,
			PermissionViewPrescriptions:     true,
			PermissionWritePrescriptions:    true,
			PermissionDispensePrescriptions: true,
			PermissionViewAllUsers:          true,
			PermissionViewAllAppointments:   true,
			PermissionSendBroadcast:         true,
			PermissionManageAdmins:          true,
		},
		constvars.RoleAdmin: {
			PermissionViewOwnProfile:        true,
			PermissionSendMessages:          true,
			PermissionBookAppointment:       true,
			PermissionManageAvailability:    true,
			PermissionApproveAppointments:   true,
			PermissionViewPrescriptions:     true,
			PermissionWritePrescriptions:    true,
			PermissionDispensePrescriptions: true,
			PermissionViewAllUsers:          true,
			PermissionViewAllAppointments:   true,
			PermissionSendBroadcast:         true,
		},
		constvars.RoleDoctor: {
			PermissionViewOwnProfile:      true,
			PermissionSendMessages:        true,
			PermissionManageAvailability:  true,
			PermissionApproveAppointments: true,
			PermissionViewPrescriptions:   true,
			PermissionWritePrescriptions:  true,
		},
		constvars.RolePatient: {
			PermissionViewOwnProfile:    true,
			PermissionSendMessages:      true,
			PermissionBookAppointment:   true,
			PermissionViewPrescriptions: true,
		},
		constvars.RolePharmacy: {
			PermissionViewOwnProfile:        true,
			PermissionSendMessages:          true,
			PermissionViewPrescriptions:     true,
			PermissionDispensePrescriptions: true,
		},
		constvars.RoleSupport: {
			PermissionViewOwnProfile: true,
			PermissionSendMessages:   true,
		},
	}
}

type PermissionMatrix struct {
	grants map[constvars.RoleName]map[string]bool
}

func NewPermissionMatrix(grants map[constvars.RoleName]map[string]bool) *PermissionMatrix {
	copied := make(map[constvars.RoleName]map[string]bool, len(grants))
	for role, row := range grants {
		copiedRow := make(map[string]bool, len(row))
		for name, granted := range row {
			copiedRow[name] = granted
		}
		copied[role] = copiedRow
	}
	return &PermissionMatrix{grants: copied}
}

// Has is false whenever the role or the permission is missing from the table.
func (m *PermissionMatrix) Has(role constvars.RoleName, name string) bool {
	return m.grants[role][name]
}

// Violation is a permission held by a role but not by a role that outranks it.
type Violation struct {
	Permission string
	GrantedTo  constvars.RoleName
	MissingOn  constvars.RoleName
}

func (v Violation) String() string {
	return fmt.Sprintf("%s granted to %s but not to %s", v.Permission, v.GrantedTo, v.MissingOn)
}

// CheckConsistency reports every permission granted to a role that some
// strictly higher ranked role lacks. The result is sorted for stable output.
func (m *PermissionMatrix) CheckConsistency(hierarchy *Hierarchy) []Violation {
	var violations []Violation
	roles := hierarchy.Roles()
	for _, lower := range roles {
		for name, granted := range m.grants[lower] {
			if !granted {
				continue
			}
			for _, higher := range roles {
				if hierarchy.Rank(higher) <= hierarchy.Rank(lower) {
					continue
				}
				if !m.Has(higher, name) {
					violations = append(violations, Violation{Permission: name, GrantedTo: lower, MissingOn: higher})
				}
			}
		}
	}

	sort.Slice(violations, func(i, j int) bool {
		return violations[i].String() < violations[j].String()
	})
	return violations
}

// Validate turns the consistency report into a single error.
func (m *PermissionMatrix) Validate(hierarchy *Hierarchy) error {
	violations := m.CheckConsistency(hierarchy)
	if len(violations) == 0 {
		return nil
	}
	errs := make([]error, 0, len(violations))
	for _, v := range violations {
		errs = append(errs, fmt.Errorf(constvars.ErrDevPermissionMatrix, v.String()))
	}
	return errors.Join(errs...)
}
