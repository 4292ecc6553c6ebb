package ports

import (
	"context"
	"time"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// CredentialRepository persists email/password credentials.
type CredentialRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// ProfileRepository persists profile documents keyed by credential id.
// Profiles are always written wholesale.
type ProfileRepository interface {
	Put(ctx context.Context, profile domain.Profile) error
	Get(ctx context.Context, id string) (*domain.Profile, error)
}

// TokenStore keeps short-lived token state: revoked session tokens and
// single-use password reset tokens.
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	SaveResetToken(ctx context.Context, token, uid string, ttl time.Duration) error
	// ConsumeResetToken returns the uid bound to token and deletes it.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

// Mailer delivers out-of-band messages.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// TokenVerifier validates a raw session token.
type TokenVerifier interface {
	Verify(ctx context.Context, raw string) (*domain.Claims, error)
}

// IdentityGateway is the boundary to the credential and profile store.
type IdentityGateway interface {
	TokenVerifier

	SignInWithEmail(ctx context.Context, email, password string) (*domain.Credential, error)
	CreateCredential(ctx context.Context, email, password string) (*domain.Credential, error)
	CompleteRegistration(ctx context.Context, cred *domain.Credential, profile domain.Profile) error
	DeleteCredential(ctx context.Context, uid string) error
	IssueLocal(sessionID, subject string, role domain.Role) (*domain.Credential, error)
	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
	SignOut(ctx context.Context, claims *domain.Claims) error
	CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.Credential, error)
	GetProfile(ctx context.Context, uid string) (*domain.Profile, error)
	Subscribe(fn func(context.Context, domain.AuthStateChange)) (unsubscribe func())
}
