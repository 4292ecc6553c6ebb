package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"citizen":   RoleCitizen,
		"Authority": RoleAuthority,
		" partner ": RolePartner,
		"ADMIN":     RoleAdmin,
	}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil {
			t.Fatalf("ParseRole(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseRole(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseRole("guest"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestRoleOrCitizen_DefaultsToCitizen(t *testing.T) {
	if got := RoleOrCitizen(""); got != RoleCitizen {
		t.Fatalf("expected citizen for empty tag, got %v", got)
	}
	if got := RoleOrCitizen("authority"); got != RoleAuthority {
		t.Fatalf("expected authority, got %v", got)
	}
}

func TestRole_Paths(t *testing.T) {
	cases := []struct {
		role      Role
		login     string
		dashboard string
	}{
		{RoleCitizen, "/citizen-auth", "/citizen-dashboard"},
		{RoleAuthority, "/authority-auth", "/authority-dashboard"},
		{RolePartner, "/partner-auth", "/partner-dashboard"},
		{RoleAdmin, "/admin-auth", "/"},
	}
	for _, tc := range cases {
		if got := tc.role.LoginPath(); got != tc.login {
			t.Errorf("%v login path = %s, want %s", tc.role, got, tc.login)
		}
		if got := tc.role.DashboardPath(); got != tc.dashboard {
			t.Errorf("%v dashboard path = %s, want %s", tc.role, got, tc.dashboard)
		}
	}
}

func TestRole_JSONRoundTrip(t *testing.T) {
	p := Profile{ID: "u1", Name: "Asha", Role: RoleAuthority}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["userType"] != "authority" {
		t.Fatalf("expected userType authority, got %v", raw["userType"])
	}

	var back Profile
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Role != RoleAuthority {
		t.Fatalf("expected RoleAuthority after decode, got %v", back.Role)
	}
}
