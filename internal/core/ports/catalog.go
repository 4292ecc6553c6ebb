package ports

import "github.com/jaaago/civic-portal/internal/core/domain"

// Catalog serves the seeded sample data. Every call returns a fresh copy
// that callers may mutate.
type Catalog interface {
	Home(role domain.Role) domain.HomeSummary
	CommunityIssues() []domain.Issue
	AuthorityIssues() []domain.Issue
	TrackedIssue() domain.TrackedIssue
	Tasks() []domain.Task
	Feedback() []domain.Feedback
	BlogPosts() []domain.BlogPost
	PartnerMessages() []domain.PartnerMessage
	Analytics() []domain.Metric
	Performance() []domain.Metric
}
