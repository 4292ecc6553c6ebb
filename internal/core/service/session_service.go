package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

const (
	defaultResumeTimeout = 5 * time.Second
	// defaultEntryTTL bounds entries created before a token expiry is known.
	defaultEntryTTL = 24 * time.Hour
	sweepInterval   = time.Minute
)

type sessionEntry struct {
	// mu serialises state changes and mirror writes of one session.
	mu      sync.Mutex
	session domain.Session
	seq     uint64
	// closed is set once the entry has been dropped from the index.
	closed atomic.Bool
	// expires is guarded by SessionService.mu.
	expires time.Time
}

// SessionService keeps the session context of every client in memory,
// follows the gateway's auth state changes and mirrors authenticated
// sessions into durable storage.
type SessionService struct {
	gateway       ports.IdentityGateway
	mirror        ports.SessionMirror
	resumeTimeout time.Duration
	log           zerolog.Logger

	now func() time.Time

	mu          sync.Mutex
	sessions    map[string]*sessionEntry
	lastSweep   time.Time
	unsubscribe func()
}

func NewSessionService(gateway ports.IdentityGateway, mirror ports.SessionMirror, resumeTimeout time.Duration, log zerolog.Logger) *SessionService {
	if resumeTimeout <= 0 {
		resumeTimeout = defaultResumeTimeout
	}
	s := &SessionService{
		gateway:       gateway,
		mirror:        mirror,
		resumeTimeout: resumeTimeout,
		log:           log,
		now:           time.Now,
		sessions:      make(map[string]*sessionEntry),
	}
	s.unsubscribe = gateway.Subscribe(s.onAuthStateChanged)
	return s
}

// Close detaches the service from the gateway.
func (s *SessionService) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// Resolve returns the session for verified claims, resuming it from the
// gateway or the mirror when it is not held in memory.
func (s *SessionService) Resolve(ctx context.Context, claims *domain.Claims) domain.Session {
	if claims == nil || claims.SessionID == "" {
		return domain.Anonymous("")
	}

	s.mu.Lock()
	e, ok := s.sessions[claims.SessionID]
	if ok && !s.now().Before(e.expires) {
		s.dropLocked(claims.SessionID, e)
		ok = false
	}
	s.mu.Unlock()
	if ok {
		e.mu.Lock()
		session := e.session
		e.mu.Unlock()
		if session.State != domain.SessionLoading {
			return session
		}
	}

	return s.resume(ctx, claims)
}

// Establish enters Authenticated directly, without a gateway round trip.
func (s *SessionService) Establish(ctx context.Context, sessionID string, profile domain.Profile, role domain.Role) (domain.Session, error) {
	e := s.entry(sessionID, time.Time{})
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session = domain.Authenticated(sessionID, profile, role)
	if err := s.mirror.Save(ctx, sessionID, *e.session.Profile, role); err != nil {
		return e.session, err
	}
	return e.session, nil
}

// End moves the session to Anonymous and clears its mirror.
func (s *SessionService) End(ctx context.Context, sessionID string) error {
	e := s.entry(sessionID, time.Time{})
	e.mu.Lock()
	defer e.mu.Unlock()

	e.session = domain.Anonymous(sessionID)
	err := s.mirror.Clear(ctx, sessionID)
	s.forget(sessionID, e)
	return err
}

func (s *SessionService) onAuthStateChanged(ctx context.Context, change domain.AuthStateChange) {
	var expires time.Time
	if change.Credential != nil {
		expires = change.Credential.ExpiresAt
	}
	e := s.entry(change.SessionID, expires)

	e.mu.Lock()
	if change.Seq < e.seq {
		e.mu.Unlock()
		return
	}
	e.seq = change.Seq

	if change.Credential == nil {
		e.session = domain.Anonymous(change.SessionID)
		s.clearMirror(ctx, change.SessionID)
		s.forget(change.SessionID, e)
		e.mu.Unlock()
		return
	}
	e.session = domain.Session{ID: change.SessionID, State: domain.SessionLoading}
	e.mu.Unlock()

	profile, err := s.gateway.GetProfile(ctx, change.Credential.UID)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() || e.seq != change.Seq {
		s.log.Debug().Str("session_id", change.SessionID).Uint64("seq", change.Seq).Msg("dropping stale profile")
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("uid", change.Credential.UID).Msg("profile unavailable, session left anonymous")
		e.session = domain.Anonymous(change.SessionID)
		s.clearMirror(ctx, change.SessionID)
		return
	}
	s.authenticate(ctx, e, change.SessionID, *profile)
}

func (s *SessionService) resume(ctx context.Context, claims *domain.Claims) domain.Session {
	sid := claims.SessionID
	e := s.entry(sid, claims.ExpiresAt)

	e.mu.Lock()
	if e.closed.Load() || e.session.State != domain.SessionLoading {
		// Another request resolved it first.
		session := e.session
		e.mu.Unlock()
		return session
	}
	seq := e.seq
	e.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.resumeTimeout)
	defer cancel()

	var (
		profile *domain.Profile
		role    domain.Role
		err     error
	)
	if claims.Role == domain.RolePartner {
		profile, role, err = s.mirror.Load(ctx, sid)
	} else if _, err = s.gateway.CurrentUser(ctx, claims); err == nil {
		profile, err = s.gateway.GetProfile(ctx, claims.Subject)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() || e.seq != seq || e.session.State != domain.SessionLoading {
		return e.session
	}
	if err != nil || profile == nil {
		s.log.Debug().Err(err).Str("session_id", sid).Msg("session resume failed")
		e.session = domain.Anonymous(sid)
		s.clearMirror(ctx, sid)
		return e.session
	}
	if role != domain.RoleNone {
		profile.Role = role
	}
	s.authenticate(ctx, e, sid, *profile)
	return e.session
}

// authenticate must be called with e.mu held.
func (s *SessionService) authenticate(ctx context.Context, e *sessionEntry, sid string, profile domain.Profile) {
	role := profile.Role
	if role == domain.RoleNone {
		role = domain.RoleCitizen
	}
	e.session = domain.Authenticated(sid, profile, role)
	if err := s.mirror.Save(ctx, sid, *e.session.Profile, role); err != nil {
		s.log.Warn().Err(err).Str("session_id", sid).Msg("failed to mirror session")
	}
}

func (s *SessionService) clearMirror(ctx context.Context, sid string) {
	if err := s.mirror.Clear(ctx, sid); err != nil {
		s.log.Warn().Err(err).Str("session_id", sid).Msg("failed to clear session mirror")
	}
}

// entry returns the entry for sid, creating it in the Loading state. The
// entry lives until expires, or defaultEntryTTL from now when expires is
// zero. Expired entries are swept at most once per sweepInterval.
func (s *SessionService) entry(sid string, expires time.Time) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweepLocked(now)
	}
	if expires.IsZero() {
		expires = now.Add(defaultEntryTTL)
	}

	e, ok := s.sessions[sid]
	if ok && !now.Before(e.expires) {
		s.dropLocked(sid, e)
		ok = false
	}
	if !ok {
		e = &sessionEntry{session: domain.Session{ID: sid, State: domain.SessionLoading}}
		s.sessions[sid] = e
	}
	if expires.After(e.expires) {
		e.expires = expires
	}
	return e
}

// sweepLocked drops every expired entry. Must be called with s.mu held.
func (s *SessionService) sweepLocked(now time.Time) {
	s.lastSweep = now
	for sid, e := range s.sessions {
		if !now.Before(e.expires) {
			s.dropLocked(sid, e)
		}
	}
}

// dropLocked removes e from the index. Must be called with s.mu held.
// Fetches still holding e see it closed and leave the mirror alone.
func (s *SessionService) dropLocked(sid string, e *sessionEntry) {
	e.closed.Store(true)
	if s.sessions[sid] == e {
		delete(s.sessions, sid)
	}
}

// forget drops a signed-out entry. Must be called with e.mu held.
func (s *SessionService) forget(sid string, e *sessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropLocked(sid, e)
}
