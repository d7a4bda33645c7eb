package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the account-level role. Residents and associations book rooms,
// admins manage bookings for the municipality.
type Role string

const (
	RoleResident    Role = "resident"
	RoleAssociation Role = "association"
	RoleAdmin       Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleResident, RoleAssociation, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
