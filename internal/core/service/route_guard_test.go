package service

import (
	"testing"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

func TestGuard(t *testing.T) {
	citizen := domain.Authenticated("s1", domain.Profile{Name: "Priya"}, domain.RoleCitizen)
	partner := domain.Authenticated("s2", domain.Profile{Name: "Partner User"}, domain.RolePartner)
	admin := domain.Authenticated("s3", domain.Profile{Name: "Admin"}, domain.RoleAdmin)
	authority := domain.Authenticated("s6", domain.Profile{Name: "Ward Officer"}, domain.RoleAuthority)
	anon := domain.Anonymous("s4")
	loading := domain.Session{ID: "s5", State: domain.SessionLoading}

	cases := []struct {
		name     string
		path     string
		session  domain.Session
		allow    bool
		view     string
		redirect string
	}{
		{"public page", "/about", anon, true, "", ""},
		{"citizen home", "/citizen-dashboard", citizen, true, "home", ""},
		{"citizen sub view", "/citizen-dashboard/report-issue", citizen, true, "report-issue", ""},
		{"anonymous to citizen", "/citizen-dashboard/community", anon, false, "", "/citizen-auth"},
		{"loading to citizen", "/citizen-dashboard", loading, false, "", "/citizen-auth"},
		{"citizen to authority", "/authority-dashboard", citizen, false, "", "/authority-auth"},
		{"partner to authority", "/authority-dashboard/analytics", partner, false, "", "/authority-auth"},
		{"authority analytics", "/authority-dashboard/analytics", authority, true, "analytics", ""},
		{"authority to citizen", "/citizen-dashboard", authority, false, "", "/citizen-auth"},
		{"partner tasks", "/partner-dashboard/tasks/", partner, true, "tasks", ""},
		{"admin to partner", "/partner-dashboard", admin, false, "", "/partner-auth"},
		{"prefix lookalike", "/citizen-dashboards", anon, true, "", ""},
	}

	for _, tc := range cases {
		got := Guard(tc.path, tc.session)
		if got.Allow != tc.allow || got.View != tc.view || got.Redirect != tc.redirect {
			t.Errorf("%s: Guard(%q) = %+v", tc.name, tc.path, got)
		}
	}
}
