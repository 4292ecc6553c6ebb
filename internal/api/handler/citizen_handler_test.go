package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

func TestCitizenHandler_Home(t *testing.T) {
	h := NewCitizenHandler(stubDashboards{}, &stubIssues{}, &stubCommunity{})

	c, rec := newContext(http.MethodGet, "/citizen-dashboard", "")
	withSession(c, "sid-1", domain.RoleCitizen)
	if err := h.Home(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		User    domain.Profile       `json:"user"`
		Sidebar []domain.SidebarItem `json:"sidebar"`
		Stats   []domain.Metric      `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.User.Name != "Test User" || len(resp.Sidebar) != 1 || resp.Stats[0].Title != "citizen" {
		t.Fatalf("unexpected home payload: %s", rec.Body.String())
	}
}

func TestCitizenHandler_ReportIssue(t *testing.T) {
	issues := &stubIssues{
		reportFn: func(ctx context.Context, in ports.IssueReport) (domain.Ack, error) {
			if in.Category != "Water" || in.Location != "Sector 15" {
				t.Fatalf("unexpected report %+v", in)
			}
			return domain.Ack{Message: "Issue reported successfully! Issue ID: #JAG123456", ID: "#JAG123456"}, nil
		},
	}
	h := NewCitizenHandler(stubDashboards{}, issues, &stubCommunity{})

	c, rec := newContext(http.MethodPost, "/citizen-dashboard/report-issue",
		`{"issueType":"Water","location":"Sector 15","description":"Pipe burst"}`)
	withSession(c, "sid-1", domain.RoleCitizen)
	if err := h.ReportIssue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var ack domain.Ack
	if err := json.Unmarshal(rec.Body.Bytes(), &ack); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ack.ID != "#JAG123456" {
		t.Fatalf("unexpected ack %+v", ack)
	}
}

func TestCitizenHandler_CommunityAppliesFilters(t *testing.T) {
	community := &stubCommunity{}
	h := NewCitizenHandler(stubDashboards{}, &stubIssues{}, community)

	c, rec := newContext(http.MethodGet, "/citizen-dashboard/community?type=Road&status=Pending&date=2025-01-10", "")
	withSession(c, "sid-7", domain.RoleCitizen)
	if err := h.Community(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := domain.IssueFilter{Category: "Road", Status: "Pending", Date: "2025-01-10"}
	if community.sid != "sid-7" || community.filter != want {
		t.Fatalf("unexpected open call: sid=%q filter=%+v", community.sid, community.filter)
	}
}

func TestCitizenHandler_Upvote(t *testing.T) {
	community := &stubCommunity{}
	h := NewCitizenHandler(stubDashboards{}, &stubIssues{}, community)

	c, rec := newContext(http.MethodPost, "/citizen-dashboard/community/1/upvote", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	withSession(c, "sid-7", domain.RoleCitizen)

	if err := h.Upvote(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var issue domain.Issue
	if err := json.Unmarshal(rec.Body.Bytes(), &issue); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !issue.UserVoted || issue.Upvotes != 13 {
		t.Fatalf("unexpected issue %+v", issue)
	}
}

func TestCitizenHandler_UpvoteUnknownIssue(t *testing.T) {
	h := NewCitizenHandler(stubDashboards{}, &stubIssues{}, &stubCommunity{})

	c, _ := newContext(http.MethodPost, "/citizen-dashboard/community/99/upvote", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	withSession(c, "sid-7", domain.RoleCitizen)

	if err := h.Upvote(c); !errors.Is(err, domain.ErrIssueNotFound) {
		t.Fatalf("expected ErrIssueNotFound, got %v", err)
	}
}

func TestCitizenHandler_CommunityRequiresSession(t *testing.T) {
	h := NewCitizenHandler(stubDashboards{}, &stubIssues{}, &stubCommunity{})

	c, _ := newContext(http.MethodGet, "/citizen-dashboard/community", "")
	err := h.Community(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestCitizenHandler_Contact(t *testing.T) {
	h := NewCitizenHandler(stubDashboards{}, &stubIssues{}, &stubCommunity{})

	t.Run("acknowledged", func(t *testing.T) {
		c, rec := newContext(http.MethodPost, "/citizen-dashboard/contact",
			`{"name":"Priya","email":"priya@example.com","message":"Hello"}`)
		if err := h.Contact(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		c, _ := newContext(http.MethodPost, "/citizen-dashboard/contact",
			`{"name":"Priya","email":"not-an-email","message":"Hello"}`)
		var ve *domain.ValidationError
		if err := h.Contact(c); !errors.As(err, &ve) || ve.Field != "email" {
			t.Fatalf("expected email validation error, got %v", err)
		}
	})
}
