package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors and reports them to Sentry without leaking
//     details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Form rule violations carry a user-facing message.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	// Known domain errors → deterministic HTTP codes. Identity messages are
	// shown to the user verbatim.
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, domain.ErrInvalidEmail.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, domain.ErrUserNotFound.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrPartnerPending):
		return http.StatusForbidden, domain.ErrPartnerPending.Error()
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusBadRequest, domain.ErrResetTokenInvalid.Error()
	case errors.Is(err, domain.ErrIssueNotFound):
		return http.StatusNotFound, domain.ErrIssueNotFound.Error()
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, domain.ErrTaskNotFound.Error()
	case errors.Is(err, domain.ErrConversationNotFound):
		return http.StatusNotFound, domain.ErrConversationNotFound.Error()
	case errors.Is(err, domain.ErrActionNotAllowed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrBotTyping):
		return http.StatusConflict, domain.ErrBotTyping.Error()
	case errors.Is(err, domain.ErrChatBusy), errors.Is(err, domain.ErrChatFull):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest, domain.ErrEmptyMessage.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	hub := sentry.CurrentHub().Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("method", c.Request().Method)
		scope.SetTag("route", c.Path())
		hub.CaptureException(err)
	})

	return http.StatusInternalServerError, "internal server error"
}
