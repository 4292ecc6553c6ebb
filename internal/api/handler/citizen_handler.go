package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// CitizenHandler serves the citizen dashboard.
type CitizenHandler struct {
	dashboards ports.DashboardService
	issues     ports.IssueService
	community  ports.CommunityService
}

func NewCitizenHandler(dashboards ports.DashboardService, issues ports.IssueService, community ports.CommunityService) *CitizenHandler {
	return &CitizenHandler{dashboards: dashboards, issues: issues, community: community}
}

// Home handles GET /citizen-dashboard.
//
// @Summary      Citizen dashboard home
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  homeResponse
// @Failure      303  "Redirect to /citizen-auth"
// @Router       /citizen-dashboard [get]
func (h *CitizenHandler) Home(c echo.Context) error {
	return home(c, h.dashboards, domain.RoleCitizen)
}

// ReportIssue handles POST /citizen-dashboard/report-issue.
//
// @Summary      Report an issue
// @Tags         citizen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reportIssueRequest  true  "Issue report"
// @Success      201   {object}  domain.Ack
// @Failure      400   {object}  map[string]string
// @Router       /citizen-dashboard/report-issue [post]
func (h *CitizenHandler) ReportIssue(c echo.Context) error {
	var req reportIssueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ack, err := h.issues.Report(c.Request().Context(), req.toReport())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ack)
}

// CheckUpdates handles GET /citizen-dashboard/check-updates.
//
// @Summary      Track an issue
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Param        id    query     string  false  "Issue id"
// @Param        date  query     string  false  "Reported date"
// @Success      200   {object}  domain.TrackedIssue
// @Router       /citizen-dashboard/check-updates [get]
func (h *CitizenHandler) CheckUpdates(c echo.Context) error {
	var q trackIssueQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.issues.Track(q.ID, q.Date))
}

// Community handles GET /citizen-dashboard/community. Opening the wall
// discards earlier votes and comments of the session.
//
// @Summary      Community wall
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Param        type    query     string  false  "Issue category"
// @Param        status  query     string  false  "Issue status"
// @Param        date    query     string  false  "Reported date"
// @Success      200     {array}   domain.Issue
// @Router       /citizen-dashboard/community [get]
func (h *CitizenHandler) Community(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var q issueFilterQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.community.Open(sid, q.toFilter()))
}

// Upvote handles POST /citizen-dashboard/community/:id/upvote.
//
// @Summary      Toggle an upvote
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Issue id"
// @Success      200  {object}  domain.Issue
// @Failure      404  {object}  map[string]string
// @Router       /citizen-dashboard/community/{id}/upvote [post]
func (h *CitizenHandler) Upvote(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	issue, err := h.community.ToggleUpvote(sid, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issue)
}

// Comment handles POST /citizen-dashboard/community/:id/comments.
//
// @Summary      Comment on an issue
// @Tags         citizen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Issue id"
// @Param        body  body      commentRequest  true  "Comment"
// @Success      201   {object}  domain.Issue
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /citizen-dashboard/community/{id}/comments [post]
func (h *CitizenHandler) Comment(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	issue, err := h.community.Comment(sid, c.Param("id"), req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, issue)
}

// Blog handles GET /citizen-dashboard/blog.
//
// @Summary      Awareness articles
// @Tags         citizen
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.BlogPost
// @Router       /citizen-dashboard/blog [get]
func (h *CitizenHandler) Blog(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboards.BlogPosts())
}

// Contact handles POST /citizen-dashboard/contact.
//
// @Summary      Contact the portal team
// @Tags         citizen
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Contact form"
// @Success      200   {object}  domain.Ack
// @Failure      400   {object}  map[string]string
// @Router       /citizen-dashboard/contact [post]
func (h *CitizenHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.dashboards.Contact(c.Request().Context(), req.Name, req.Email, req.Message))
}
