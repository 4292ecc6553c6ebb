package domain

import "time"

// Profile is the role-tagged user document kept in the profile store, keyed
// by the credential identifier.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Address  string `json:"address,omitempty"`
	Verified bool   `json:"verified"`
	Role     Role   `json:"userType"`

	DOB      string `json:"dob,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`

	// Authority only.
	GovID        string `json:"govId,omitempty"`
	Department   string `json:"department,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// Credential is the result of a successful sign-in or credential creation.
type Credential struct {
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	SessionID string    `json:"session_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Account is a stored email/password credential.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Claims is the verified content of a session token.
type Claims struct {
	Subject   string
	SessionID string
	Role      Role
	TokenID   string
	Raw       string
	ExpiresAt time.Time
}
