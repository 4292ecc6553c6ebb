package domain

import "fmt"

// SessionState is the lifecycle state of a session.
type SessionState uint8

const (
	SessionLoading SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SessionState) UnmarshalText(b []byte) error {
	switch string(b) {
	case "loading":
		*s = SessionLoading
	case "anonymous":
		*s = SessionAnonymous
	case "authenticated":
		*s = SessionAuthenticated
	default:
		return fmt.Errorf("unknown session state %q", b)
	}
	return nil
}

// Session is the resolved profile and role of one client, or their absence.
type Session struct {
	ID      string       `json:"id,omitempty"`
	State   SessionState `json:"state"`
	Profile *Profile     `json:"user,omitempty"`
	Role    Role         `json:"userType,omitempty"`
}

// Anonymous returns an anonymous session for id.
func Anonymous(id string) Session {
	return Session{ID: id, State: SessionAnonymous}
}

// Authenticated returns an authenticated session for id.
func Authenticated(id string, p Profile, role Role) Session {
	p.Role = role
	return Session{ID: id, State: SessionAuthenticated, Profile: &p, Role: role}
}

// IsAuthenticated reports whether the session carries a profile and role.
func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated && s.Role != RoleNone
}

// AuthStateChange is emitted by the identity gateway whenever a session
// signs in or out. Credential is nil for sign-out.
type AuthStateChange struct {
	Seq        uint64
	SessionID  string
	Credential *Credential
}
