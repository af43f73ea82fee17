// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the credential record behind every login. The username is chosen
// once at registration and never changes; uniqueness is guaranteed by the
// storage layer, not by application-side checks.
type Account struct {
	ID           int64     `json:"id"`       // System-assigned identifier, stable for the account lifetime.
	Username     string    `json:"username"` // Unique, case-sensitive login handle.
	PasswordHash string    `json:"-"`        // bcrypt digest. Never serialized, never leaves the store boundary except to the hasher.
	Role         Role      `json:"role"`     // Optional classification. Empty means no role assigned.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// View returns the subset of account fields that is safe to hand to a client.
func (a *Account) View() *AccountView {
	view := &AccountView{
		ID:       a.ID,
		Username: a.Username,
	}
	if a.Role != "" {
		role := a.Role
		view.Role = &role
	}

	return view
}

// AccountView is the client-facing projection of an Account. The password
// digest is excluded by construction rather than by tag.
type AccountView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     *Role  `json:"role"` // nil serializes as null when no role is assigned.
}
