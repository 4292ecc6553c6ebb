// Package mail delivers out-of-band messages.
package mail

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"
)

// LogMailer writes password reset links to the log instead of sending them.
// It stands in for a real mail provider in development.
type LogMailer struct {
	resetURL string
	log      zerolog.Logger
}

// NewLogMailer creates a LogMailer. resetURL is the page that accepts the
// token as its "token" query parameter.
func NewLogMailer(resetURL string, log zerolog.Logger) *LogMailer {
	return &LogMailer{resetURL: resetURL, log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.log.Info().Ctx(ctx).
		Str("to", email).
		Str("link", m.Link(token)).
		Msg("password reset requested")
	return nil
}

// Link builds the reset link for token.
func (m *LogMailer) Link(token string) string {
	u, err := url.Parse(m.resetURL)
	if err != nil {
		return m.resetURL + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}
