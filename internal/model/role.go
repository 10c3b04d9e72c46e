package model

import "github.com/pkg/errors"

// Role identifies one of the fixed administrative privilege tiers. Storage
// settings are keyed by role, so the set of valid roles is closed.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleSuperAdmin      Role = "superAdmin"
	RoleSuperSuperAdmin Role = "superSuperAdmin"
)

// ErrInvalidRole indicates that a role value is not a member of the role
// enumeration. Callers should report it without consulting the database.
var ErrInvalidRole = errors.New("invalid role")

// Roles lists every defined role in ascending privilege order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleSuperAdmin, RoleSuperSuperAdmin}
}

// ParseRole converts a raw string to a Role. The comparison is case
// sensitive; anything outside the enumeration fails with ErrInvalidRole.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleSuperAdmin, RoleSuperSuperAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}
