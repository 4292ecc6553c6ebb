package ports

import (
	"context"

	"github.com/jaaago/civic-portal/internal/core/domain"
)

// IssueReport is a citizen's new issue submission.
type IssueReport struct {
	Category    string
	Location    string
	Description string
}

// CommunityService owns the per-session community wall view.
type CommunityService interface {
	Open(sessionID string, filter domain.IssueFilter) []domain.Issue
	ToggleUpvote(sessionID, issueID string) (domain.Issue, error)
	Comment(sessionID, issueID, text string) (domain.Issue, error)
}

// IssueService covers citizen reporting and authority triage.
type IssueService interface {
	Report(ctx context.Context, in IssueReport) (domain.Ack, error)
	Track(issueID, date string) domain.TrackedIssue
	Open(sessionID string, filter domain.IssueFilter) []domain.Issue
	Get(sessionID, issueID string) (domain.Issue, error)
	UpdateStatus(sessionID, issueID string, status domain.IssueStatus) (domain.Issue, domain.Ack, error)
	Comment(sessionID, issueID, text string) (domain.Issue, error)
	AttachResolution(issueID, filename string) (domain.Ack, error)
}

// TaskService covers the partner task board.
type TaskService interface {
	List() []domain.Task
	Get(taskID string) (domain.Task, error)
	Act(ctx context.Context, taskID string, action domain.TaskAction) (domain.Ack, error)
	AttachProof(taskID, filename string) (domain.Ack, error)
	Messages() []domain.PartnerMessage
	SendMessage(ctx context.Context, text string) (domain.Ack, error)
}

// DashboardService serves the static parts of the dashboard shells.
type DashboardService interface {
	Sidebar(role domain.Role) []domain.SidebarItem
	Home(role domain.Role) domain.HomeSummary
	Analytics() []domain.Metric
	Performance() []domain.Metric
	Feedback() []domain.Feedback
	BlogPosts() []domain.BlogPost
	Contact(ctx context.Context, name, email, message string) domain.Ack
	Subscribe(ctx context.Context, email string) domain.Ack
}
