package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/api/middleware"
	"github.com/jaaago/civic-portal/internal/core/domain"
)

// ctxSession returns the session resolved by the Authenticate middleware.
// Anonymous when the middleware did not run.
func ctxSession(c echo.Context) domain.Session {
	s, ok := c.Get(middleware.SessionKey).(domain.Session)
	if !ok {
		return domain.Anonymous("")
	}
	return s
}

// ctxClaims returns the verified token claims and fails fast with 401 when
// the request is not authenticated.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*domain.Claims)
	if claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// ctxSessionID returns the id of an authenticated session. Dashboard views
// are keyed by it.
func ctxSessionID(c echo.Context) (string, error) {
	s := ctxSession(c)
	if !s.IsAuthenticated() || s.ID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return s.ID, nil
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
