package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

const defaultPartnerName = "Partner User"

// AuthOptions tunes the registration rules.
type AuthOptions struct {
	AdminCode          string
	PartnerAutoApprove bool
	// Now is the clock used for age checks. Defaults to time.Now.
	Now func() time.Time
}

// AuthService implements sign-in and registration for every role.
type AuthService struct {
	gateway  ports.IdentityGateway
	sessions ports.SessionService
	opts     AuthOptions
	log      zerolog.Logger
}

func NewAuthService(gateway ports.IdentityGateway, sessions ports.SessionService, opts AuthOptions, log zerolog.Logger) *AuthService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuthService{gateway: gateway, sessions: sessions, opts: opts, log: log}
}

// SignIn is shared by the citizen, authority and admin login screens. The
// landing path follows the stored role, not the screen used.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	cred, err := s.gateway.SignInWithEmail(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.result(ctx, cred), nil
}

func (s *AuthService) RegisterCitizen(ctx context.Context, in ports.CitizenRegistration) (*ports.AuthResult, error) {
	if err := checkAge(in.DOB, s.opts.Now()); err != nil {
		return nil, err
	}
	if err := checkPassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	return s.register(ctx, in.Email, in.Password, domain.Profile{
		Name:     in.Name,
		Phone:    in.Phone,
		Address:  in.Address,
		Verified: true,
		Role:     domain.RoleCitizen,
		DOB:      in.DOB.Format(time.DateOnly),
		Pincode:  in.Pincode,
		State:    in.State,
		District: in.District,
	})
}

// RegisterAuthority creates an unverified authority profile.
func (s *AuthService) RegisterAuthority(ctx context.Context, in ports.AuthorityRegistration) (*ports.AuthResult, error) {
	if err := checkPassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	return s.register(ctx, in.Email, in.Password, domain.Profile{
		Name:         in.Name,
		Verified:     false,
		Role:         domain.RoleAuthority,
		GovID:        in.GovID,
		Department:   in.Department,
		Jurisdiction: in.Jurisdiction,
	})
}

func (s *AuthService) RegisterAdmin(ctx context.Context, in ports.AdminRegistration) (*ports.AuthResult, error) {
	if err := checkPassword(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}
	if err := checkAdminCode(in.AdminCode, s.opts.AdminCode); err != nil {
		s.log.Warn().Str("email", in.Email).Msg("admin registration with invalid code")
		return nil, err
	}

	return s.register(ctx, in.Email, in.Password, domain.Profile{
		Name:     in.Name,
		Verified: true,
		Role:     domain.RoleAdmin,
	})
}

// PartnerSignIn opens a partner session without consulting the identity
// store. The organisation fields are accepted but not persisted.
func (s *AuthService) PartnerSignIn(ctx context.Context, in ports.PartnerLogin) (*ports.AuthResult, error) {
	if !s.opts.PartnerAutoApprove {
		return nil, domain.ErrPartnerPending
	}

	name := strings.TrimSpace(in.ContactPerson)
	if name == "" {
		name = defaultPartnerName
	}
	profile := domain.Profile{
		ID:       "partner-" + uuid.NewString(),
		Name:     name,
		Phone:    in.Phone,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Verified: true,
	}

	sessionID := uuid.NewString()
	cred, err := s.gateway.IssueLocal(sessionID, profile.ID, domain.RolePartner)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Establish(ctx, sessionID, profile, domain.RolePartner)
	if err != nil {
		return nil, fmt.Errorf("establish partner session: %w", err)
	}

	s.log.Info().Str("session_id", sessionID).Str("org", in.OrgName).Msg("partner signed in")
	return &ports.AuthResult{
		Token:     cred.Token,
		Session:   session,
		Landing:   domain.RolePartner.DashboardPath(),
		ExpiresAt: cred.ExpiresAt,
	}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	return s.gateway.ResetPassword(ctx, email)
}

func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, password, confirm string) error {
	if err := checkPassword(password, confirm); err != nil {
		return err
	}
	return s.gateway.ConfirmPasswordReset(ctx, token, password)
}

func (s *AuthService) SignOut(ctx context.Context, claims *domain.Claims) error {
	return s.gateway.SignOut(ctx, claims)
}

// register creates the credential and then the profile. A failed profile
// write deletes the credential again so no orphan is left behind.
func (s *AuthService) register(ctx context.Context, email, password string, profile domain.Profile) (*ports.AuthResult, error) {
	cred, err := s.gateway.CreateCredential(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile.ID = cred.UID
	profile.Email = cred.Email
	if err := s.gateway.CompleteRegistration(ctx, cred, profile); err != nil {
		if delErr := s.gateway.DeleteCredential(ctx, cred.UID); delErr != nil {
			s.log.Error().Err(delErr).Str("uid", cred.UID).Msg("orphaned credential after failed profile write")
		}
		return nil, fmt.Errorf("register %s: %w", profile.Role, err)
	}

	s.log.Info().Str("uid", cred.UID).Str("role", profile.Role.String()).Msg("registered")
	return s.result(ctx, cred), nil
}

func (s *AuthService) result(ctx context.Context, cred *domain.Credential) *ports.AuthResult {
	session := s.sessions.Resolve(ctx, &domain.Claims{
		Subject:   cred.UID,
		SessionID: cred.SessionID,
		Raw:       cred.Token,
		ExpiresAt: cred.ExpiresAt,
	})
	return &ports.AuthResult{
		Token:     cred.Token,
		Session:   session,
		Landing:   session.Role.DashboardPath(),
		ExpiresAt: cred.ExpiresAt,
	}
}
