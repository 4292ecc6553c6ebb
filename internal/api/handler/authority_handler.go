package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// AuthorityHandler serves the authority dashboard.
type AuthorityHandler struct {
	dashboards ports.DashboardService
	issues     ports.IssueService
}

func NewAuthorityHandler(dashboards ports.DashboardService, issues ports.IssueService) *AuthorityHandler {
	return &AuthorityHandler{dashboards: dashboards, issues: issues}
}

// Home handles GET /authority-dashboard.
//
// @Summary      Authority dashboard home
// @Tags         authority
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  homeResponse
// @Failure      303  "Redirect to /authority-auth"
// @Router       /authority-dashboard [get]
func (h *AuthorityHandler) Home(c echo.Context) error {
	return home(c, h.dashboards, domain.RoleAuthority)
}

// Issues handles GET /authority-dashboard/issues. Opening the board discards
// earlier status changes and comments of the session.
//
// @Summary      Manage issues
// @Tags         authority
// @Produce      json
// @Security     BearerAuth
// @Param        type     query     string  false  "Issue category"
// @Param        status   query     string  false  "Issue status"
// @Param        urgency  query     string  false  "Urgency"
// @Param        date     query     string  false  "Reported date"
// @Success      200      {array}   domain.Issue
// @Router       /authority-dashboard/issues [get]
func (h *AuthorityHandler) Issues(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var q issueFilterQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.issues.Open(sid, q.toFilter()))
}

// Issue handles GET /authority-dashboard/issues/:id.
//
// @Summary      Issue detail
// @Tags         authority
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Issue id"
// @Success      200  {object}  domain.Issue
// @Failure      404  {object}  map[string]string
// @Router       /authority-dashboard/issues/{id} [get]
func (h *AuthorityHandler) Issue(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	issue, err := h.issues.Get(sid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issue)
}

// UpdateStatus handles PUT /authority-dashboard/issues/:id/status.
//
// @Summary      Update issue status
// @Tags         authority
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Issue id"
// @Param        body  body      statusUpdateRequest  true  "New status"
// @Success      200   {object}  issueUpdateResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /authority-dashboard/issues/{id}/status [put]
func (h *AuthorityHandler) UpdateStatus(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req statusUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	issue, ack, err := h.issues.UpdateStatus(sid, c.Param("id"), domain.IssueStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issueUpdateResponse{Issue: issue, Message: ack.Message})
}

// Comment handles POST /authority-dashboard/issues/:id/comments.
//
// @Summary      Comment on an issue
// @Tags         authority
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Issue id"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  domain.Issue
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /authority-dashboard/issues/{id}/comments [post]
func (h *AuthorityHandler) Comment(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	issue, err := h.issues.Comment(sid, c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, issue)
}

// UploadResolution handles POST /authority-dashboard/issues/:id/resolution.
//
// @Summary      Upload a resolution image
// @Tags         authority
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true  "Issue id"
// @Param        image  formData  file    true  "Resolution photo"
// @Success      200    {object}  domain.Ack
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /authority-dashboard/issues/{id}/resolution [post]
func (h *AuthorityHandler) UploadResolution(c echo.Context) error {
	name, err := uploadedName(c, "image")
	if err != nil {
		return err
	}
	ack, err := h.issues.AttachResolution(c.Param("id"), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ack)
}

// Analytics handles GET /authority-dashboard/analytics.
//
// @Summary      Analytics
// @Tags         authority
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Metric
// @Router       /authority-dashboard/analytics [get]
func (h *AuthorityHandler) Analytics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.Analytics())
}

// Feedback handles GET /authority-dashboard/citizens.
//
// @Summary      Citizen feedback
// @Tags         authority
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Feedback
// @Router       /authority-dashboard/citizens [get]
func (h *AuthorityHandler) Feedback(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.Feedback())
}

// Settings handles GET /authority-dashboard/settings.
//
// @Summary      Authority settings
// @Tags         authority
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Router       /authority-dashboard/settings [get]
func (h *AuthorityHandler) Settings(c echo.Context) error {
	return settings(c)
}
