package enums

import "fmt"

// MemberRole represents the platform role carried in access tokens.
type MemberRole string

const (
	MemberRoleSuperAdmin MemberRole = "super_admin"
	MemberRoleAdmin      MemberRole = "admin"
	MemberRoleManager    MemberRole = "manager"
	MemberRoleStaff      MemberRole = "staff"
)

var validMemberRoles = []MemberRole{
	MemberRoleSuperAdmin,
	MemberRoleAdmin,
	MemberRoleManager,
	MemberRoleStaff,
}

// String implements fmt.Stringer.
func (m MemberRole) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MemberRole.
func (m MemberRole) IsValid() bool {
	return isValid(m, validMemberRoles)
}

// CanEditLayout reports whether the role may place furniture or change table states.
func (m MemberRole) CanEditLayout() bool {
	switch m {
	case MemberRoleSuperAdmin, MemberRoleAdmin, MemberRoleManager:
		return true
	}
	return false
}

// ParseMemberRole converts raw input into a MemberRole.
func ParseMemberRole(value string) (MemberRole, error) {
	for _, candidate := range validMemberRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid member role %q", value)
}
