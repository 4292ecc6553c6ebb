package ports

import (
	"context"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// SessionMirror is the durable copy of an authenticated session: one entry
// for the JSON profile and one for the role tag, always written and cleared
// together.
type SessionMirror interface {
	Save(ctx context.Context, sessionID string, profile domain.Profile, role domain.Role) error
	Load(ctx context.Context, sessionID string) (*domain.Profile, domain.Role, error)
	Clear(ctx context.Context, sessionID string) error
}

// SessionService holds the session context of every client.
type SessionService interface {
	Resolve(ctx context.Context, claims *domain.Claims) domain.Session
	Establish(ctx context.Context, sessionID string, profile domain.Profile, role domain.Role) (domain.Session, error)
	End(ctx context.Context, sessionID string) error
}
