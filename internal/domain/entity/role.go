package entity

import "slices"

// Role is the authorization level of a principal.
type Role string

const (
	RoleUser      Role = "user"
	RoleGuide     Role = "guide"
	RoleLeadGuide Role = "lead-guide"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the four known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGuide, RoleLeadGuide, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is the set of roles a route admits. The empty set admits nobody.
type Roles []Role

// Admits reports whether a principal with role may pass.
func (rs Roles) Admits(role Role) bool {
	return role.IsValid() && slices.Contains(rs, role)
}
