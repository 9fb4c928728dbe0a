package user

import "strings"

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBranchManager Role = "branch_manager"
	RoleBranchStaff   Role = "branch_staff"
)

// roles written by the previous two-role system
var legacyRoles = map[string]Role{
	"local":    RoleBranchStaff,
	"sucursal": RoleBranchStaff,
	"gerente":  RoleBranchManager,
	"manager":  RoleBranchManager,
	"staff":    RoleBranchStaff,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBranchManager, RoleBranchStaff:
		return true
	default:
		return false
	}
}

func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleBranchManager
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role, nil
	}
	if legacy, ok := legacyRoles[string(role)]; ok {
		return legacy, nil
	}
	return "", ErrInvalidRole
}

// RoleFromStored never fails: anything unknown gets the least privileged role.
func RoleFromStored(s string) Role {
	role, err := NewRole(s)
	if err != nil {
		return RoleBranchStaff
	}
	return role
}
