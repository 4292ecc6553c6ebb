package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// TokenStore keeps revoked token ids and password reset tokens.
// Key format: revoked:<jti> and reset:<token>.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke blocks tokenID until ttl, the remaining lifetime of the token.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *TokenStore) SaveResetToken(ctx context.Context, token, uid string, ttl time.Duration) error {
	return s.client.Set(ctx, resetKey(token), uid, ttl).Err()
}

// ConsumeResetToken reads and deletes the token in one round trip.
func (s *TokenStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	uid, err := s.client.GetDel(ctx, resetKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrResetTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return uid, nil
}

func revokedKey(tokenID string) string { return "revoked:" + tokenID }
func resetKey(token string) string     { return "reset:" + token }
