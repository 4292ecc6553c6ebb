package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

type stubCredentialRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	nextID   int
}

func newStubCredentialRepo() *stubCredentialRepo {
	return &stubCredentialRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	return &clone
}

func (r *stubCredentialRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneAccount(account)
	created.ID = "uid-" + strconv.Itoa(r.nextID)
	r.accounts[created.ID] = created
	return cloneAccount(created), nil
}

func (r *stubCredentialRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[id]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubCredentialRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	a.PasswordHash = hash
	return nil
}

func (r *stubCredentialRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubCredentialRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

type stubProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
	putErr   error
	onGet    func()
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]domain.Profile)}
}

func (r *stubProfileRepo) Put(_ context.Context, p domain.Profile) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func (r *stubProfileRepo) Get(_ context.Context, id string) (*domain.Profile, error) {
	if r.onGet != nil {
		r.onGet()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &p, nil
}

type stubTokenStore struct {
	mu      sync.Mutex
	revoked map[string]bool
	resets  map[string]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{revoked: make(map[string]bool), resets: make(map[string]string)}
}

func (s *stubTokenStore) Revoke(_ context.Context, id string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[id] = true
	return nil
}

func (s *stubTokenStore) IsRevoked(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revoked[id], nil
}

func (s *stubTokenStore) SaveResetToken(_ context.Context, token, uid string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resets[token] = uid
	return nil
}

func (s *stubTokenStore) ConsumeResetToken(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid, ok := s.resets[token]
	if !ok {
		return "", domain.ErrResetTokenInvalid
	}
	delete(s.resets, token)
	return uid, nil
}

type sentMail struct {
	email string
	token string
}

type stubMailer struct {
	sent []sentMail
}

func (m *stubMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.sent = append(m.sent, sentMail{email: email, token: token})
	return nil
}

type mirrorEntry struct {
	profile domain.Profile
	role    domain.Role
}

// stubMirror keeps both mirror keys of a session in one entry.
type stubMirror struct {
	mu      sync.Mutex
	entries map[string]mirrorEntry
	saves   int
	clears  int
}

func newStubMirror() *stubMirror {
	return &stubMirror{entries: make(map[string]mirrorEntry)}
}

func (m *stubMirror) Save(_ context.Context, sid string, p domain.Profile, role domain.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.entries[sid] = mirrorEntry{profile: p, role: role}
	return nil
}

func (m *stubMirror) Load(_ context.Context, sid string) (*domain.Profile, domain.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sid]
	if !ok {
		return nil, domain.RoleNone, errors.New("no mirrored session")
	}
	p := e.profile
	return &p, e.role, nil
}

func (m *stubMirror) Clear(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clears++
	delete(m.entries, sid)
	return nil
}

func (m *stubMirror) has(sid string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[sid]
	return ok
}

// fixture wires a real gateway and session service over in-memory stubs.
type fixture struct {
	creds    *stubCredentialRepo
	profiles *stubProfileRepo
	tokens   *stubTokenStore
	mailer   *stubMailer
	mirror   *stubMirror
	gateway  *IdentityGateway
	sessions *SessionService
	auth     *AuthService
}

func newFixture(opts AuthOptions) *fixture {
	f := &fixture{
		creds:    newStubCredentialRepo(),
		profiles: newStubProfileRepo(),
		tokens:   newStubTokenStore(),
		mailer:   &stubMailer{},
		mirror:   newStubMirror(),
	}
	f.gateway = NewIdentityGateway(f.creds, f.profiles, f.tokens, f.mailer,
		NewTokenIssuer("secret", time.Hour), time.Hour, zerolog.Nop())
	f.sessions = NewSessionService(f.gateway, f.mirror, time.Second, zerolog.Nop())
	if opts.Now == nil {
		opts.Now = func() time.Time { return date(2025, time.January, 10) }
	}
	f.auth = NewAuthService(f.gateway, f.sessions, opts, zerolog.Nop())
	return f
}

func citizenForm() ports.CitizenRegistration {
	return ports.CitizenRegistration{
		Name:            "Priya Sharma",
		Email:           "priya@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DOB:             date(1995, time.May, 4),
		Phone:           "9876543210",
		Address:         "12 Main Street",
		Pincode:         "302001",
		State:           "Rajasthan",
		District:        "Jaipur",
	}
}
