package user

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Role gates privileged operations.
type Role int

const (
	UnknownRole Role = iota
	Admin
	Manager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Admin:       "Admin",
		Manager:     "Manager",
	}
}

// ParseRole converts a role claim such as "Admin" into a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
