package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/api/middleware"
	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// newContext builds an Echo context with the validator installed. A non-empty
// body is sent as JSON.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withSession(c echo.Context, sid string, role domain.Role) {
	session := domain.Authenticated(sid, domain.Profile{ID: "uid-" + sid, Name: "Test User"}, role)
	c.Set(middleware.SessionKey, session)
	c.Set(middleware.ClaimsKey, &domain.Claims{Subject: "uid-" + sid, SessionID: sid, Role: role})
}

// --- AuthService ---

type stubAuthService struct {
	signInFn      func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	citizenFn     func(ctx context.Context, in ports.CitizenRegistration) (*ports.AuthResult, error)
	authorityFn   func(ctx context.Context, in ports.AuthorityRegistration) (*ports.AuthResult, error)
	adminFn       func(ctx context.Context, in ports.AdminRegistration) (*ports.AuthResult, error)
	partnerFn     func(ctx context.Context, in ports.PartnerLogin) (*ports.AuthResult, error)
	resetFn       func(ctx context.Context, email string) error
	confirmFn     func(ctx context.Context, token, password, confirm string) error
	signOutClaims *domain.Claims
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) RegisterCitizen(ctx context.Context, in ports.CitizenRegistration) (*ports.AuthResult, error) {
	return s.citizenFn(ctx, in)
}

func (s *stubAuthService) RegisterAuthority(ctx context.Context, in ports.AuthorityRegistration) (*ports.AuthResult, error) {
	return s.authorityFn(ctx, in)
}

func (s *stubAuthService) RegisterAdmin(ctx context.Context, in ports.AdminRegistration) (*ports.AuthResult, error) {
	return s.adminFn(ctx, in)
}

func (s *stubAuthService) PartnerSignIn(ctx context.Context, in ports.PartnerLogin) (*ports.AuthResult, error) {
	return s.partnerFn(ctx, in)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email string) error {
	return s.resetFn(ctx, email)
}

func (s *stubAuthService) ConfirmPasswordReset(ctx context.Context, token, password, confirm string) error {
	return s.confirmFn(ctx, token, password, confirm)
}

func (s *stubAuthService) SignOut(_ context.Context, claims *domain.Claims) error {
	s.signOutClaims = claims
	return nil
}

// --- DashboardService ---

type stubDashboards struct{}

func (stubDashboards) Sidebar(role domain.Role) []domain.SidebarItem {
	if role == domain.RoleAdmin {
		return nil
	}
	return []domain.SidebarItem{{Path: role.DashboardPath(), Label: "Dashboard Home"}}
}

func (stubDashboards) Home(role domain.Role) domain.HomeSummary {
	return domain.HomeSummary{Stats: []domain.Metric{{Title: role.String(), Value: "1"}}}
}

func (stubDashboards) Analytics() []domain.Metric   { return []domain.Metric{{Title: "Resolved"}} }
func (stubDashboards) Performance() []domain.Metric { return []domain.Metric{{Title: "Rating"}} }
func (stubDashboards) Feedback() []domain.Feedback  { return []domain.Feedback{{ID: 1, Rating: 5}} }
func (stubDashboards) BlogPosts() []domain.BlogPost { return []domain.BlogPost{{ID: 1}} }

func (stubDashboards) Contact(context.Context, string, string, string) domain.Ack {
	return domain.Ack{Message: "Message sent successfully! We will get back to you soon."}
}

func (stubDashboards) Subscribe(context.Context, string) domain.Ack {
	return domain.Ack{Message: "Thank you for subscribing to our newsletter!"}
}

// --- IssueService / CommunityService ---

type stubIssues struct {
	reportFn   func(ctx context.Context, in ports.IssueReport) (domain.Ack, error)
	openSID    string
	openFilter domain.IssueFilter
	status     domain.IssueStatus
	attached   string
}

func (s *stubIssues) Report(ctx context.Context, in ports.IssueReport) (domain.Ack, error) {
	return s.reportFn(ctx, in)
}

func (s *stubIssues) Track(issueID, _ string) domain.TrackedIssue {
	return domain.TrackedIssue{ID: issueID, Status: "In Progress"}
}

func (s *stubIssues) Open(sid string, filter domain.IssueFilter) []domain.Issue {
	s.openSID, s.openFilter = sid, filter
	return []domain.Issue{{ID: "AUTH001"}}
}

func (s *stubIssues) Get(_, issueID string) (domain.Issue, error) {
	if issueID != "AUTH001" {
		return domain.Issue{}, domain.ErrIssueNotFound
	}
	return domain.Issue{ID: issueID}, nil
}

func (s *stubIssues) UpdateStatus(_, issueID string, status domain.IssueStatus) (domain.Issue, domain.Ack, error) {
	s.status = status
	return domain.Issue{ID: issueID, Status: status}, domain.Ack{Message: "Issue " + issueID + " status updated to: " + string(status)}, nil
}

func (s *stubIssues) Comment(_, issueID, text string) (domain.Issue, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Issue{}, domain.ErrEmptyMessage
	}
	return domain.Issue{ID: issueID, Comments: []string{text}, CommentCount: 1}, nil
}

func (s *stubIssues) AttachResolution(issueID, filename string) (domain.Ack, error) {
	s.attached = filename
	return domain.Ack{Message: "Resolution image uploaded: " + filename, ID: issueID}, nil
}

type stubCommunity struct {
	sid    string
	filter domain.IssueFilter
}

func (s *stubCommunity) Open(sid string, filter domain.IssueFilter) []domain.Issue {
	s.sid, s.filter = sid, filter
	return []domain.Issue{{ID: "1", Upvotes: 12}}
}

func (s *stubCommunity) ToggleUpvote(sid, issueID string) (domain.Issue, error) {
	s.sid = sid
	if issueID != "1" {
		return domain.Issue{}, domain.ErrIssueNotFound
	}
	return domain.Issue{ID: issueID, Upvotes: 13, UserVoted: true}, nil
}

func (s *stubCommunity) Comment(sid, issueID, text string) (domain.Issue, error) {
	s.sid = sid
	return domain.Issue{ID: issueID, Comments: []string{text}, CommentCount: 1}, nil
}

// --- TaskService ---

type stubTasks struct {
	acted    domain.TaskAction
	proofFor string
}

func (s *stubTasks) List() []domain.Task { return []domain.Task{{ID: "TASK001"}} }

func (s *stubTasks) Get(taskID string) (domain.Task, error) {
	if taskID != "TASK001" {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return domain.Task{ID: taskID, Status: "Pending"}, nil
}

func (s *stubTasks) Act(_ context.Context, taskID string, action domain.TaskAction) (domain.Ack, error) {
	s.acted = action
	if action == domain.TaskComplete {
		return domain.Ack{}, domain.ErrActionNotAllowed
	}
	return domain.Ack{Message: "Task " + taskID + " " + action.PastTense() + " successfully!"}, nil
}

func (s *stubTasks) AttachProof(taskID, filename string) (domain.Ack, error) {
	s.proofFor = taskID
	return domain.Ack{Message: "Proof uploaded: " + filename}, nil
}

func (s *stubTasks) Messages() []domain.PartnerMessage {
	return []domain.PartnerMessage{{ID: 1, From: "Authority"}}
}

func (s *stubTasks) SendMessage(_ context.Context, text string) (domain.Ack, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Ack{}, domain.ErrEmptyMessage
	}
	return domain.Ack{Message: "Message sent: " + text}, nil
}
