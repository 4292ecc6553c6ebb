package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// --- Request types ---

type issueFilterQuery struct {
	Category string `query:"type"`
	Status   string `query:"status"`
	Urgency  string `query:"urgency"`
	Date     string `query:"date"`
}

// Category and text are checked by the issue service, which owns the
// user-facing messages.
type reportIssueRequest struct {
	Category    string `json:"issueType"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type trackIssueQuery struct {
	ID   string `query:"id"`
	Date string `query:"date"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof='Pending' 'In Progress' 'Completed'"`
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type newsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type partnerMessageRequest struct {
	Message string `json:"message"`
}

// --- Response types ---

type homeResponse struct {
	Profile *domain.Profile      `json:"user,omitempty"`
	Sidebar []domain.SidebarItem `json:"sidebar"`
	domain.HomeSummary
}

type issueUpdateResponse struct {
	Issue   domain.Issue `json:"issue"`
	Message string       `json:"message"`
}

type settingsResponse struct {
	Profile *domain.Profile `json:"user"`
	Role    domain.Role     `json:"userType"`
}

// --- Request → Service input ---

func (q issueFilterQuery) toFilter() domain.IssueFilter {
	return domain.IssueFilter{
		Category: q.Category,
		Status:   q.Status,
		Urgency:  q.Urgency,
		Date:     q.Date,
	}
}

func (r reportIssueRequest) toReport() ports.IssueReport {
	return ports.IssueReport{
		Category:    r.Category,
		Location:    r.Location,
		Description: r.Description,
	}
}

// --- helpers shared by the dashboard handlers ---

func home(c echo.Context, dashboards ports.DashboardService, role domain.Role) error {
	s := ctxSession(c)
	sidebar := dashboards.Sidebar(role)
	if sidebar == nil {
		sidebar = []domain.SidebarItem{}
	}
	return c.JSON(http.StatusOK, homeResponse{
		Profile:     s.Profile,
		Sidebar:     sidebar,
		HomeSummary: dashboards.Home(role),
	})
}

func settings(c echo.Context) error {
	s := ctxSession(c)
	return c.JSON(http.StatusOK, settingsResponse{Profile: s.Profile, Role: s.Role})
}

// uploadedName returns the client filename of the multipart file in field.
func uploadedName(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", domain.Invalid(field, field+" is required")
	}
	return fh.Filename, nil
}

func bindQuery(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	return nil
}
