package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff is true for staff members and administrators.
func (r UserRole) IsStaff() bool {
	return r == RoleAdmin || r == RoleStaff
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// AllRoles lists the roles in descending privilege order.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleStaff, RoleUser}
}
