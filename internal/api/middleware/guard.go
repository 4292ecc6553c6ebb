package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/service"
	"github.com/jaaago/civic-portal/internal/pkg/metrics"
)

// Guard enforces role-based access to the dashboard areas. It must run after
// Authenticate. Rejected requests are redirected to the area's login screen.
func Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			session, _ := c.Get(SessionKey).(domain.Session)

			decision := service.Guard(path, session)
			if !decision.Allow {
				if area, ok := service.AreaFor(path); ok {
					metrics.GuardRedirectsTotal.WithLabelValues(area.Role.String()).Inc()
				}
				return c.Redirect(http.StatusSeeOther, decision.Redirect)
			}

			if decision.View != "" {
				c.Set(ViewKey, decision.View)
			}
			return next(c)
		}
	}
}
