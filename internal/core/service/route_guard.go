package service

import (
	"strings"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// Area is a role-restricted path prefix.
type Area struct {
	Prefix string
	Role   domain.Role
}

// ProtectedAreas lists the dashboard shells. Admin has none.
var ProtectedAreas = []Area{
	{Prefix: "/citizen-dashboard", Role: domain.RoleCitizen},
	{Prefix: "/authority-dashboard", Role: domain.RoleAuthority},
	{Prefix: "/partner-dashboard", Role: domain.RolePartner},
}

// Decision is the outcome of guarding a path.
type Decision struct {
	Allow bool
	// View is the dashboard view under the area prefix, "home" for the root.
	// Empty for unprotected paths.
	View     string
	Redirect string
}

// AreaFor returns the protected area containing path.
func AreaFor(path string) (Area, bool) {
	for _, a := range ProtectedAreas {
		if path == a.Prefix || strings.HasPrefix(path, a.Prefix+"/") {
			return a, true
		}
	}
	return Area{}, false
}

// Guard decides whether session may render path. Protected areas require an
// authenticated session of the area's role; anything else is sent to the
// area's login screen.
func Guard(path string, session domain.Session) Decision {
	area, ok := AreaFor(path)
	if !ok {
		return Decision{Allow: true}
	}
	if !session.IsAuthenticated() || session.Role != area.Role {
		return Decision{Redirect: area.Role.LoginPath()}
	}

	view := strings.Trim(strings.TrimPrefix(path, area.Prefix), "/")
	if view == "" {
		view = "home"
	}
	return Decision{Allow: true, View: view}
}
