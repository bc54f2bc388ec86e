package principal

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role is the closed set of actor roles in the system.
// Authorization decisions are expressed as capability methods on Principal
// rather than string comparisons scattered through handlers.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is a staff member with full administrative access.
	RoleAdmin

	// RoleLogistics is a staff member handling day-to-day order logistics.
	RoleLogistics

	// RoleCustomer is an authenticated customer; customers may only access
	// their own data.
	RoleCustomer
)

// The wire representation of RoleLogistics is "logistica", inherited from
// the deployed system; tokens and the users table carry that string.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:   "unknown",
		RoleAdmin:     "admin",
		RoleLogistics: "logistica",
		RoleCustomer:  "customer",
	}
}

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleLogistics, RoleCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
}

// IsStaff reports whether the role belongs to internal staff.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleLogistics
}

// IsAdmin reports whether the role is the administrator role.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
