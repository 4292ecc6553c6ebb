package ports

import (
	"context"
	"time"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// CitizenRegistration carries the citizen sign-up form.
type CitizenRegistration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	DOB             time.Time
	Phone           string
	Address         string
	Pincode         string
	State           string
	District        string
}

// AuthorityRegistration carries the authority sign-up form.
type AuthorityRegistration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	GovID           string
	Department      string
	Jurisdiction    string
}

// AdminRegistration carries the admin sign-up form.
type AdminRegistration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AdminCode       string
}

// PartnerLogin carries the partner sign-in form.
type PartnerLogin struct {
	OrgName       string
	Email         string
	Password      string
	ContactPerson string
	Role          string
	Phone         string
}

// AuthResult is returned by every successful sign-in or registration.
type AuthResult struct {
	Token   string
	Session domain.Session
	// Landing is the dashboard root for the session role. The originally
	// requested sub-path is never restored.
	Landing   string
	ExpiresAt time.Time
}

// AuthService is the per-role authentication use case.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	RegisterCitizen(ctx context.Context, in CitizenRegistration) (*AuthResult, error)
	RegisterAuthority(ctx context.Context, in AuthorityRegistration) (*AuthResult, error)
	RegisterAdmin(ctx context.Context, in AdminRegistration) (*AuthResult, error)
	PartnerSignIn(ctx context.Context, in PartnerLogin) (*AuthResult, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, password, confirm string) error
	SignOut(ctx context.Context, claims *domain.Claims) error
}
