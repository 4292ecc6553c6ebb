package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// TokenIssuer signs and parses HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for subject bound to sessionID. role is only embedded
// for locally fabricated sessions that have no stored credential.
func (t *TokenIssuer) Issue(subject, sessionID string, role domain.Role) (string, *domain.Claims, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	jti := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": subject,
		"sid": sessionID,
		"jti": jti,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	if role != domain.RoleNone {
		claims["role"] = role.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &domain.Claims{
		Subject:   subject,
		SessionID: sessionID,
		Role:      role,
		TokenID:   jti,
		Raw:       signed,
		ExpiresAt: time.Unix(exp.Unix(), 0),
	}, nil
}

// Parse validates signature and expiry and extracts the claims.
func (t *TokenIssuer) Parse(raw string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	sid, _ := claims["sid"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || sid == "" || jti == "" {
		return nil, domain.ErrUnauthenticated
	}

	out := &domain.Claims{Subject: sub, SessionID: sid, TokenID: jti, Raw: raw}
	if tag, ok := claims["role"].(string); ok {
		role, err := domain.ParseRole(tag)
		if err != nil {
			return nil, domain.ErrUnauthenticated
		}
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
