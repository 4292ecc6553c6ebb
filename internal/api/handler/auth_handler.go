package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
	"github.com/jaaago/civic-portal/internal/pkg/metrics"
)

const (
	resetRequestedMessage = "If an account exists for this email, a password reset link has been sent."
	resetConfirmedMessage = "Your password has been updated. Please sign in again."
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an email/password account from a role's login screen.
// The landing path follows the role stored on the profile.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /citizen-auth/login [post]
// @Router       /authority-auth/login [post]
// @Router       /admin-auth/login [post]
func (h *AuthHandler) Login(screen domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := bindAndValidate(c, &req); err != nil {
			observeAuth("login", screen, err)
			return err
		}

		res, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
		observeAuth("login", screen, err)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, toAuthResponse(res))
	}
}

// RegisterCitizen creates a citizen account.
//
// @Summary      Register a citizen
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      citizenRegisterRequest  true  "Citizen registration form"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /citizen-auth/register [post]
func (h *AuthHandler) RegisterCitizen(c echo.Context) error {
	var req citizenRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		observeAuth("register", domain.RoleCitizen, err)
		return err
	}

	in, err := toCitizenRegistration(req)
	if err != nil {
		observeAuth("register", domain.RoleCitizen, err)
		return err
	}

	res, err := h.authService.RegisterCitizen(c.Request().Context(), in)
	return h.registered(c, domain.RoleCitizen, res, err)
}

// RegisterAuthority creates an authority account pending verification.
//
// @Summary      Register an authority
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authorityRegisterRequest  true  "Authority registration form"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /authority-auth/register [post]
func (h *AuthHandler) RegisterAuthority(c echo.Context) error {
	var req authorityRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		observeAuth("register", domain.RoleAuthority, err)
		return err
	}

	res, err := h.authService.RegisterAuthority(c.Request().Context(), toAuthorityRegistration(req))
	return h.registered(c, domain.RoleAuthority, res, err)
}

// RegisterAdmin creates an admin account. Requires the admin code.
//
// @Summary      Register an admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminRegisterRequest  true  "Admin registration form"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin-auth/register [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req adminRegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		observeAuth("register", domain.RoleAdmin, err)
		return err
	}

	res, err := h.authService.RegisterAdmin(c.Request().Context(), toAdminRegistration(req))
	return h.registered(c, domain.RoleAdmin, res, err)
}

// PartnerLogin opens a partner session without the identity store.
//
// @Summary      Partner sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      partnerLoginRequest  true  "Partner organisation details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /partner-auth/login [post]
func (h *AuthHandler) PartnerLogin(c echo.Context) error {
	var req partnerLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		observeAuth("partner_login", domain.RolePartner, err)
		return err
	}

	res, err := h.authService.PartnerSignIn(c.Request().Context(), toPartnerLogin(req))
	observeAuth("partner_login", domain.RolePartner, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}

// ResetPassword sends a reset link when the account exists. The answer does
// not reveal whether it does.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Account email"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.authService.ResetPassword(c.Request().Context(), req.Email)
	observeAuth("reset", domain.RoleNone, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: resetRequestedMessage})
}

// ConfirmPasswordReset sets a new password using a reset token.
//
// @Summary      Confirm a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      confirmResetRequest  true  "Reset token and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/reset-password/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req confirmResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.authService.ConfirmPasswordReset(c.Request().Context(), req.Token, req.Password, req.ConfirmPassword)
	observeAuth("reset_confirm", domain.RoleNone, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: resetConfirmedMessage})
}

// Logout revokes the caller's token and ends the session.
//
// @Summary      Sign out
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	err = h.authService.SignOut(c.Request().Context(), claims)
	observeAuth("logout", claims.Role, err)
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) registered(c echo.Context, role domain.Role, res *ports.AuthResult, err error) error {
	observeAuth("register", role, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// observeAuth records the outcome of an authentication attempt.
func observeAuth(action string, role domain.Role, err error) {
	metrics.AuthAttemptsTotal.WithLabelValues(action, role.String(), authResult(err)).Inc()
}

func authResult(err error) string {
	var he *echo.HTTPError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrPartnerPending):
		return "rejected"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrResetTokenInvalid),
		errors.As(err, &he):
		return "invalid"
	}
	return "error"
}
