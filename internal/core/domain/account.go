package domain

import "errors"

// Role determines which capabilities an account holds.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleAccountant Role = "Accountant"
	RoleViewer     Role = "Viewer"
)

// Capability is a named permission grantable to a role.
type Capability string

const (
	CapView        Capability = "view"
	CapAdd         Capability = "add"
	CapEdit        Capability = "edit"
	CapDelete      Capability = "delete"
	CapManageUsers Capability = "manage_users"
	CapViewAudit   Capability = "view_audit"
)

// rolePermissions is the static role → capability table. Provisioning is
// fixed, so the table never changes at runtime.
var rolePermissions = map[Role][]Capability{
	RoleAdmin:      {CapView, CapAdd, CapEdit, CapDelete, CapManageUsers, CapViewAudit},
	RoleAccountant: {CapView, CapAdd, CapEdit},
	RoleViewer:     {CapView},
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCapability = errors.New("missing capability")
var ErrAccountUnknown = errors.New("account unknown")

// HasCapability reports whether the role grants the given capability.
func (r Role) HasCapability(cap Capability) bool {
	for _, c := range rolePermissions[r] {
		if c == cap {
			return true
		}
	}
	return false
}

// Valid reports whether r is one of the provisioned roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Account models one of the fixed provisioned identities. Immutable after
// provisioning.
type Account struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}
