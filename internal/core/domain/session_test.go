package domain

import (
	"encoding/json"
	"testing"
)

func TestSession_JSON(t *testing.T) {
	in := Authenticated("sid-1", Profile{ID: "uid-1", Name: "Priya"}, RoleAuthority)

	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out Session
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", raw, err)
	}
	if out.State != SessionAuthenticated || out.Role != RoleAuthority || out.Profile.Role != RoleAuthority {
		t.Fatalf("unexpected session %+v", out)
	}
	if !out.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
}

func TestSessionState_UnmarshalUnknown(t *testing.T) {
	var s SessionState
	if err := s.UnmarshalText([]byte("sleeping")); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}

func TestSession_AnonymousIsNotAuthenticated(t *testing.T) {
	if Anonymous("sid").IsAuthenticated() {
		t.Fatalf("anonymous session must not be authenticated")
	}
	// An authenticated state without a role is not usable.
	if (Session{State: SessionAuthenticated}).IsAuthenticated() {
		t.Fatalf("session without role must not be authenticated")
	}
}
