package service

import "github.com/jaaago/civic-portal/internal/core/domain"

type stubCatalog struct{}

func (stubCatalog) Home(role domain.Role) domain.HomeSummary {
	return domain.HomeSummary{Stats: []domain.Metric{{Title: "Role", Value: role.String()}}}
}

func (stubCatalog) CommunityIssues() []domain.Issue {
	return []domain.Issue{
		{ID: "#JAG123456", Category: "Road", Title: "Pothole on Main Street", Status: domain.IssueInProgress, Upvotes: 12, CommentCount: 5, ReportedDate: "2025-01-10"},
		{ID: "#JAG123457", Category: "Water", Title: "Water supply disruption", Status: domain.IssueCompleted, Upvotes: 8, CommentCount: 3, ReportedDate: "2025-01-08", UserVoted: true},
	}
}

func (stubCatalog) AuthorityIssues() []domain.Issue {
	return []domain.Issue{
		{ID: "#JAG123456", Category: "Road", Status: domain.IssuePending, Urgency: "High", ReportedDate: "2025-01-12"},
		{ID: "#JAG123457", Category: "Water", Status: domain.IssueInProgress, Urgency: "Medium", ReportedDate: "2025-01-11"},
	}
}

func (stubCatalog) TrackedIssue() domain.TrackedIssue {
	return domain.TrackedIssue{ID: "#JAG123456", Status: "In Progress", Updates: []domain.IssueUpdate{{Date: "2025-01-10", Status: "Reported"}}}
}

func (stubCatalog) Tasks() []domain.Task {
	return []domain.Task{
		{ID: "#TASK001", Status: "In Progress"},
		{ID: "#TASK002", Status: "Pending"},
	}
}

func (stubCatalog) Feedback() []domain.Feedback  { return []domain.Feedback{{ID: 1, Rating: 5}} }
func (stubCatalog) BlogPosts() []domain.BlogPost { return []domain.BlogPost{{ID: 1}} }
func (stubCatalog) PartnerMessages() []domain.PartnerMessage {
	return []domain.PartnerMessage{{ID: 1, From: "PWD Officer"}}
}
func (stubCatalog) Analytics() []domain.Metric   { return []domain.Metric{{Title: "Resolution Time"}} }
func (stubCatalog) Performance() []domain.Metric { return []domain.Metric{{Title: "Completion Rate"}} }
