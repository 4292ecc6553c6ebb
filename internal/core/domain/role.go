package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of portal roles. The zero value is RoleNone and
// never appears on an authenticated session.
type Role uint8

const (
	RoleNone Role = iota
	RoleCitizen
	RoleAuthority
	RolePartner
	RoleAdmin
)

// Roles lists every assignable role in display order.
var Roles = []Role{RoleCitizen, RoleAuthority, RolePartner, RoleAdmin}

func (r Role) String() string {
	switch r {
	case RoleCitizen:
		return "citizen"
	case RoleAuthority:
		return "authority"
	case RolePartner:
		return "partner"
	case RoleAdmin:
		return "admin"
	case RoleNone:
		return ""
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

// ParseRole converts a role tag into a Role. Matching is case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "citizen":
		return RoleCitizen, nil
	case "authority":
		return RoleAuthority, nil
	case "partner":
		return RolePartner, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleNone, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// RoleOrCitizen resolves a stored role tag, defaulting to citizen when the
// tag is absent or unrecognised.
func RoleOrCitizen(s string) Role {
	r, err := ParseRole(s)
	if err != nil {
		return RoleCitizen
	}
	return r
}

// LoginPath is the unauthenticated entry screen for the role.
func (r Role) LoginPath() string {
	switch r {
	case RoleCitizen:
		return "/citizen-auth"
	case RoleAuthority:
		return "/authority-auth"
	case RolePartner:
		return "/partner-auth"
	case RoleAdmin:
		return "/admin-auth"
	case RoleNone:
		return "/"
	}
	return "/"
}

// DashboardPath is where a freshly authenticated session lands. Admin has no
// dashboard shell and lands on the home page.
func (r Role) DashboardPath() string {
	switch r {
	case RoleCitizen:
		return "/citizen-dashboard"
	case RoleAuthority:
		return "/authority-dashboard"
	case RolePartner:
		return "/partner-dashboard"
	case RoleAdmin, RoleNone:
		return "/"
	}
	return "/"
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*r = RoleNone
		return nil
	}
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
