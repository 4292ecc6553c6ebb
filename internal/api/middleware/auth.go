package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
	"github.com/jaaago/civic-portal/internal/pkg/metrics"
)

// Context keys set by Authenticate and Guard.
const (
	ClaimsKey  = "claims"
	SessionKey = "session"
	ViewKey    = "view"
)

// Authenticate verifies an optional bearer token and resolves the caller's
// session. Requests without a usable token continue with an anonymous
// session, the way a client with cleared storage would.
func Authenticate(verifier ports.TokenVerifier, sessions ports.SessionService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var claims *domain.Claims
			if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
				}

				verified, err := verifier.Verify(ctx, parts[1])
				if err != nil {
					log.Debug().Err(err).Str("path", c.Path()).Msg("ignoring unusable token")
				} else {
					claims = verified
				}
			}

			session := sessions.Resolve(ctx, claims)
			metrics.SessionsResolvedTotal.WithLabelValues(session.State.String()).Inc()

			if claims != nil {
				c.Set(ClaimsKey, claims)
			}
			c.Set(SessionKey, session)

			return next(c)
		}
	}
}

// RequireAuth rejects requests that carry no verified token.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, _ := c.Get(ClaimsKey).(*domain.Claims); claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			return next(c)
		}
	}
}
