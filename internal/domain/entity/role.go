// Package entity contains the core business objects of the project.
package entity

// Role classifies an account. The payroll system defines no authorization
// rules beyond authenticated-or-not, so the role is carried through tokens
// and account views for the client's benefit only.
type Role string

const (
	// RoleAdmin marks an account with administrative intent on the client side.
	RoleAdmin Role = "admin"
	// RoleStaff marks a regular staff account.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}
