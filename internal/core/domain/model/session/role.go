package session

import (
	"fmt"

	"workorders/internal/pkg/errs"
)

// Role is the permission class of the acting user.
type Role int

const (
	// UnknownRole catches uninitialized Role values.
	UnknownRole Role = iota
	Consultant
	Admin
	// Manager is reserved until its product rules exist.
	Manager
)

var roleNames = map[Role]string{
	Consultant: "consultant",
	Admin:      "admin",
	Manager:    "manager",
}

// Roles lists every declared role in declaration order.
func Roles() []Role {
	return []Role{Consultant, Admin, Manager}
}

// ParseRole maps the wire name of a role to its value.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
}

// String returns the wire name, or "unknown" for values outside the enumeration.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects values outside the enumeration.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsReserved reports whether the role is declared but carries no rules yet.
func (r Role) IsReserved() bool {
	return r == Manager
}
