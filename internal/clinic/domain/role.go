package domain

import "fmt"

// Role is a principal's privilege level. Roles form a partial order:
//
//	superadmin > admin > doctor
//	             admin > patient
//
// doctor and patient are incomparable.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RolePatient    Role = "patient"
)

// dominates lists, for each role, every role it is at least as strong as.
var dominates = map[Role]map[Role]struct{}{
	RoleSuperAdmin: {RoleSuperAdmin: {}, RoleAdmin: {}, RoleDoctor: {}, RolePatient: {}},
	RoleAdmin:      {RoleAdmin: {}, RoleDoctor: {}, RolePatient: {}},
	RoleDoctor:     {RoleDoctor: {}},
	RolePatient:    {RolePatient: {}},
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("domain: unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := dominates[r]
	return ok
}

// AtLeast reports whether r is required or outranks it. Unknown roles satisfy nothing.
func (r Role) AtLeast(required Role) bool {
	set, ok := dominates[r]
	if !ok {
		return false
	}
	_, ok = set[required]
	return ok
}

// Outranks reports whether r is strictly above other.
func (r Role) Outranks(other Role) bool {
	return r != other && r.AtLeast(other)
}

func (r Role) String() string { return string(r) }
