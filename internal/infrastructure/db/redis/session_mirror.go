package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

const (
	userKeyPrefix     = "jaaago_user:"
	userTypeKeyPrefix = "jaaago_userType:"
)

// SessionMirror keeps an authenticated session in two keys:
//
//	jaaago_user:<session_id>     JSON profile
//	jaaago_userType:<session_id> role tag
//
// Both keys are written, expired and deleted in one transaction.
type SessionMirror struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionMirror creates a SessionMirror. A zero ttl keeps entries until
// they are cleared.
func NewSessionMirror(client *redis.Client, ttl time.Duration) *SessionMirror {
	return &SessionMirror{client: client, ttl: ttl}
}

func (m *SessionMirror) Save(ctx context.Context, sessionID string, profile domain.Profile, role domain.Role) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, userKey(sessionID), raw, m.ttl)
		pipe.Set(ctx, userTypeKey(sessionID), role.String(), m.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("mirror session: %w", err)
	}
	return nil
}

// Load reads both keys. A missing key on either side is reported as
// domain.ErrUnauthenticated.
func (m *SessionMirror) Load(ctx context.Context, sessionID string) (*domain.Profile, domain.Role, error) {
	vals, err := m.client.MGet(ctx, userKey(sessionID), userTypeKey(sessionID)).Result()
	if err != nil {
		return nil, domain.RoleNone, fmt.Errorf("load mirror: %w", err)
	}

	rawProfile, ok1 := vals[0].(string)
	rawRole, ok2 := vals[1].(string)
	if !ok1 || !ok2 {
		return nil, domain.RoleNone, domain.ErrUnauthenticated
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(rawProfile), &profile); err != nil {
		return nil, domain.RoleNone, fmt.Errorf("decode mirrored profile: %w", err)
	}
	return &profile, domain.RoleOrCitizen(rawRole), nil
}

func (m *SessionMirror) Clear(ctx context.Context, sessionID string) error {
	err := m.client.Del(ctx, userKey(sessionID), userTypeKey(sessionID)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("clear mirror: %w", err)
	}
	return nil
}

func userKey(sessionID string) string     { return userKeyPrefix + sessionID }
func userTypeKey(sessionID string) string { return userTypeKeyPrefix + sessionID }
