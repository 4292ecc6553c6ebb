package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jaaago/civic-portal/internal/api/handler"
	"github.com/jaaago/civic-portal/internal/api/middleware"
	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth       ports.AuthService
	Verifier   ports.TokenVerifier
	Sessions   ports.SessionService
	Dashboards ports.DashboardService
	Issues     ports.IssueService
	Community  ports.CommunityService
	Tasks      ports.TaskService
	Chat       ports.ChatService
	Locale     ports.LocaleService
	Location   ports.LocationService

	// HealthChecks maps a dependency name to its ping for /health/ready.
	HealthChecks map[string]func(context.Context) error

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("civic"))

	// --- Probes, metrics, docs (no session) ---
	health := handler.NewHealthHandler(d.HealthChecks)
	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Everything else resolves the session and passes the route guard ---
	app := e.Group("", middleware.Authenticate(d.Verifier, d.Sessions, d.Log), middleware.Guard())

	site := handler.NewSiteHandler(d.Dashboards)
	app.GET("/session", site.Session)
	app.POST("/newsletter", site.Newsletter)

	auth := handler.NewAuthHandler(d.Auth)
	app.POST("/citizen-auth/login", auth.Login(domain.RoleCitizen))
	app.POST("/citizen-auth/register", auth.RegisterCitizen)
	app.POST("/authority-auth/login", auth.Login(domain.RoleAuthority))
	app.POST("/authority-auth/register", auth.RegisterAuthority)
	app.POST("/admin-auth/login", auth.Login(domain.RoleAdmin))
	app.POST("/admin-auth/register", auth.RegisterAdmin)
	app.POST("/partner-auth/login", auth.PartnerLogin)
	app.POST("/auth/reset-password", auth.ResetPassword)
	app.POST("/auth/reset-password/confirm", auth.ConfirmPasswordReset)
	app.POST("/auth/logout", auth.Logout, middleware.RequireAuth())

	locale := handler.NewLocaleHandler(d.Locale)
	app.GET("/locale", locale.Get)
	location := handler.NewLocationHandler(d.Location)
	app.GET("/location", location.Get)

	chat := handler.NewChatHandler(d.Chat)
	app.POST("/chat", chat.Open)
	app.POST("/chat/:id/messages", chat.Send)
	app.GET("/chat/:id/messages", chat.Messages)

	// --- Citizen dashboard ---
	citizen := handler.NewCitizenHandler(d.Dashboards, d.Issues, d.Community)
	cg := app.Group(domain.RoleCitizen.DashboardPath())
	cg.GET("", citizen.Home)
	cg.POST("/report-issue", citizen.ReportIssue)
	cg.GET("/check-updates", citizen.CheckUpdates)
	cg.GET("/community", citizen.Community)
	cg.POST("/community/:id/upvote", citizen.Upvote)
	cg.POST("/community/:id/comments", citizen.Comment)
	cg.GET("/blog", citizen.Blog)
	cg.POST("/contact", citizen.Contact)

	// --- Authority dashboard ---
	authority := handler.NewAuthorityHandler(d.Dashboards, d.Issues)
	ag := app.Group(domain.RoleAuthority.DashboardPath())
	ag.GET("", authority.Home)
	ag.GET("/issues", authority.Issues)
	ag.GET("/issues/:id", authority.Issue)
	ag.PUT("/issues/:id/status", authority.UpdateStatus)
	ag.POST("/issues/:id/comments", authority.Comment)
	ag.POST("/issues/:id/resolution", authority.UploadResolution)
	ag.GET("/analytics", authority.Analytics)
	ag.GET("/citizens", authority.Feedback)
	ag.GET("/settings", authority.Settings)

	// --- Partner dashboard ---
	partner := handler.NewPartnerHandler(d.Dashboards, d.Tasks)
	pg := app.Group(domain.RolePartner.DashboardPath())
	pg.GET("", partner.Home)
	pg.GET("/tasks", partner.Tasks)
	pg.GET("/tasks/:id", partner.Task)
	pg.POST("/tasks/:id/proof", partner.UploadProof)
	pg.POST("/tasks/:id/:action", partner.Act)
	pg.GET("/performance", partner.Performance)
	pg.GET("/communication", partner.Messages)
	pg.POST("/communication", partner.SendMessage)
	pg.GET("/settings", partner.Settings)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
