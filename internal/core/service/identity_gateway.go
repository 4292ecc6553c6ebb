package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

const defaultResetTTL = time.Hour

type subscriber struct {
	id int
	fn func(context.Context, domain.AuthStateChange)
}

type emitLock struct {
	mu   sync.Mutex
	refs int
}

// IdentityGateway implements ports.IdentityGateway on top of the credential
// and profile repositories, the token store and a mailer.
type IdentityGateway struct {
	credentials ports.CredentialRepository
	profiles    ports.ProfileRepository
	tokens      ports.TokenStore
	mailer      ports.Mailer
	issuer      *TokenIssuer
	resetTTL    time.Duration
	validate    *validator.Validate
	log         zerolog.Logger

	mu     sync.Mutex
	seq    uint64
	nextID int
	subs   []subscriber
	// emitLocks serialises delivery per session, so listeners observe the
	// changes of one session in emission order.
	emitLocks map[string]*emitLock
}

func NewIdentityGateway(
	credentials ports.CredentialRepository,
	profiles ports.ProfileRepository,
	tokens ports.TokenStore,
	mailer ports.Mailer,
	issuer *TokenIssuer,
	resetTTL time.Duration,
	log zerolog.Logger,
) *IdentityGateway {
	if resetTTL <= 0 {
		resetTTL = defaultResetTTL
	}
	return &IdentityGateway{
		credentials: credentials,
		profiles:    profiles,
		tokens:      tokens,
		mailer:      mailer,
		issuer:      issuer,
		resetTTL:    resetTTL,
		validate:    validator.New(),
		log:         log,
	}
}

// SignInWithEmail checks the password against the stored credential and
// opens a new session.
func (g *IdentityGateway) SignInWithEmail(ctx context.Context, email, password string) (*domain.Credential, error) {
	email, err := g.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	acct, err := g.credentials.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := g.issue(acct.ID, acct.Email)
	if err != nil {
		return nil, err
	}

	g.log.Info().Str("uid", acct.ID).Str("session_id", cred.SessionID).Msg("signed in")
	g.emit(ctx, cred.SessionID, cred)
	return cred, nil
}

// CreateCredential stores a new email/password credential and opens a session
// for it. Listeners are not notified until CompleteRegistration.
func (g *IdentityGateway) CreateCredential(ctx context.Context, email, password string) (*domain.Credential, error) {
	email, err := g.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	acct, err := g.credentials.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	return g.issue(acct.ID, acct.Email)
}

// CompleteRegistration writes the profile document for a freshly created
// credential and announces the signed-in session.
func (g *IdentityGateway) CompleteRegistration(ctx context.Context, cred *domain.Credential, profile domain.Profile) error {
	profile.ID = cred.UID
	if err := g.profiles.Put(ctx, profile); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	g.emit(ctx, cred.SessionID, cred)
	return nil
}

// DeleteCredential removes a credential. Used to compensate a registration
// whose profile write failed.
func (g *IdentityGateway) DeleteCredential(ctx context.Context, uid string) error {
	if err := g.credentials.Delete(ctx, uid); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// IssueLocal signs a token for a session that has no stored credential.
func (g *IdentityGateway) IssueLocal(sessionID, subject string, role domain.Role) (*domain.Credential, error) {
	raw, claims, err := g.issuer.Issue(subject, sessionID, role)
	if err != nil {
		return nil, err
	}
	return &domain.Credential{
		UID:       subject,
		SessionID: sessionID,
		Token:     raw,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// ResetPassword sends a reset link when the account exists. It succeeds for
// unknown addresses so callers cannot probe for accounts.
func (g *IdentityGateway) ResetPassword(ctx context.Context, email string) error {
	email, err := g.normalizeEmail(email)
	if err != nil {
		return err
	}

	acct, err := g.credentials.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		g.log.Debug().Str("email", email).Msg("password reset for unknown account")
		return nil
	}
	if err != nil {
		return err
	}

	token := uuid.NewString()
	if err := g.tokens.SaveResetToken(ctx, token, acct.ID, g.resetTTL); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	if err := g.mailer.SendPasswordReset(ctx, acct.Email, token); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// ConfirmPasswordReset consumes a reset token and replaces the password.
func (g *IdentityGateway) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	uid, err := g.tokens.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := g.credentials.UpdatePassword(ctx, uid, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	g.log.Info().Str("uid", uid).Msg("password reset")
	return nil
}

// SignOut revokes the session token and announces the signed-out session.
func (g *IdentityGateway) SignOut(ctx context.Context, claims *domain.Claims) error {
	if claims == nil {
		return domain.ErrUnauthenticated
	}
	if ttl := time.Until(claims.ExpiresAt); ttl > 0 {
		if err := g.tokens.Revoke(ctx, claims.TokenID, ttl); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
	}

	g.log.Info().Str("session_id", claims.SessionID).Msg("signed out")
	g.emit(ctx, claims.SessionID, nil)
	return nil
}

// Verify parses a raw token and rejects revoked ones.
func (g *IdentityGateway) Verify(ctx context.Context, raw string) (*domain.Claims, error) {
	claims, err := g.issuer.Parse(raw)
	if err != nil {
		return nil, err
	}
	revoked, err := g.tokens.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("revocation check: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}
	return claims, nil
}

// CurrentUser resolves the credential behind verified claims.
func (g *IdentityGateway) CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.Credential, error) {
	if claims == nil {
		return nil, domain.ErrUnauthenticated
	}
	acct, err := g.credentials.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	return &domain.Credential{
		UID:       acct.ID,
		Email:     acct.Email,
		SessionID: claims.SessionID,
		Token:     claims.Raw,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (g *IdentityGateway) GetProfile(ctx context.Context, uid string) (*domain.Profile, error) {
	return g.profiles.Get(ctx, uid)
}

// Subscribe registers fn for every auth state change. Listeners run
// synchronously on the emitting goroutine and must not call Subscribe.
// Changes of different sessions may be delivered concurrently.
func (g *IdentityGateway) Subscribe(fn func(context.Context, domain.AuthStateChange)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextID++
	id := g.nextID
	g.subs = append(g.subs, subscriber{id: id, fn: fn})

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		for i, s := range g.subs {
			if s.id == id {
				g.subs = append(g.subs[:i], g.subs[i+1:]...)
				return
			}
		}
	}
}

func (g *IdentityGateway) emit(ctx context.Context, sessionID string, cred *domain.Credential) {
	l := g.lockSession(sessionID)
	defer g.unlockSession(sessionID, l)

	g.mu.Lock()
	g.seq++
	change := domain.AuthStateChange{Seq: g.seq, SessionID: sessionID, Credential: cred}
	subs := make([]subscriber, len(g.subs))
	copy(subs, g.subs)
	g.mu.Unlock()

	for _, s := range subs {
		s.fn(ctx, change)
	}
}

func (g *IdentityGateway) lockSession(sessionID string) *emitLock {
	g.mu.Lock()
	if g.emitLocks == nil {
		g.emitLocks = make(map[string]*emitLock)
	}
	l, ok := g.emitLocks[sessionID]
	if !ok {
		l = &emitLock{}
		g.emitLocks[sessionID] = l
	}
	l.refs++
	g.mu.Unlock()

	l.mu.Lock()
	return l
}

func (g *IdentityGateway) unlockSession(sessionID string, l *emitLock) {
	l.mu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(g.emitLocks, sessionID)
	}
}

func (g *IdentityGateway) issue(uid, email string) (*domain.Credential, error) {
	sessionID := uuid.NewString()
	raw, claims, err := g.issuer.Issue(uid, sessionID, domain.RoleNone)
	if err != nil {
		return nil, err
	}
	return &domain.Credential{
		UID:       uid,
		Email:     email,
		SessionID: sessionID,
		Token:     raw,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (g *IdentityGateway) normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := g.validate.Var(email, "required,email"); err != nil {
		return "", domain.ErrInvalidEmail
	}
	return email, nil
}
