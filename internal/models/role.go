package models

// Role is an ordered access level: user < gestor < admin < super_admin.
type Role string

// Role constants
const (
	RoleUser       Role = "user"
	RoleGestor     Role = "gestor"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var roleRank = map[Role]int{
	RoleUser:       1,
	RoleGestor:     2,
	RoleAdmin:      3,
	RoleSuperAdmin: 4,
}

// ParseRole returns the Role for s and whether it is known
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleRank[r]
	return r, ok
}

// Rank returns the position of r in the lattice; unknown roles rank 0.
func (r Role) Rank() int {
	return roleRank[r]
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	rank := r.Rank()
	return rank > 0 && rank >= min.Rank()
}

// Assignable reports whether r may be given through user management.
// super_admin is provisioned out of band.
func (r Role) Assignable() bool {
	return r == RoleAdmin || r == RoleGestor || r == RoleUser
}

func (r Role) String() string {
	return string(r)
}
