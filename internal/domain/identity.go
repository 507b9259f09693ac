package domain

// Role names carried verbatim in token claims and the employees table.
const (
	RoleEmployee   = "Employee"
	RoleHRAdmin    = "HR Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// Identity is the authenticated caller for the current request,
// resolved from token claims. Roles are trusted as issued; they are
// not re-read from the store (a role change only takes effect on the
// next login).
type Identity struct {
	UserID string
	Email  string
	Roles  []string
}

// HasAnyRole reports whether the identity's role set intersects
// allowed. Checks are flat set intersection: every call site must list
// each role expected to pass, including SuperAdmin.
func (i Identity) HasAnyRole(allowed ...string) bool {
	for _, want := range allowed {
		for _, have := range i.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// IsAdmin is shorthand for the HR Admin / SuperAdmin gate used on
// employee management and leave decisions.
func (i Identity) IsAdmin() bool {
	return i.HasAnyRole(RoleHRAdmin, RoleSuperAdmin)
}
