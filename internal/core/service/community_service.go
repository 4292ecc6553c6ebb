package service

import (
	"strings"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// CommunityService serves the community wall. Votes and comments live in
// the session's view only.
type CommunityService struct {
	views *viewStore[domain.Issue]
}

func NewCommunityService(catalog ports.Catalog) *CommunityService {
	return &CommunityService{views: newViewStore(catalog.CommunityIssues)}
}

// Open reseeds the wall and returns the issues passing filter.
func (s *CommunityService) Open(sessionID string, filter domain.IssueFilter) []domain.Issue {
	return filterIssues(s.views.reset(sessionID), filter)
}

func (s *CommunityService) ToggleUpvote(sessionID, issueID string) (domain.Issue, error) {
	issue, ok := s.views.update(sessionID, issueByID(issueID), func(i *domain.Issue) {
		i.ToggleUpvote()
	})
	if !ok {
		return domain.Issue{}, domain.ErrIssueNotFound
	}
	return issue, nil
}

func (s *CommunityService) Comment(sessionID, issueID, text string) (domain.Issue, error) {
	return commentOn(s.views, sessionID, issueID, text)
}

func issueByID(id string) func(domain.Issue) bool {
	return func(i domain.Issue) bool { return i.ID == id }
}

func filterIssues(issues []domain.Issue, filter domain.IssueFilter) []domain.Issue {
	out := issues[:0]
	for _, i := range issues {
		if filter.Match(i) {
			out = append(out, i)
		}
	}
	return out
}

func commentOn(views *viewStore[domain.Issue], sessionID, issueID, text string) (domain.Issue, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Issue{}, domain.ErrEmptyMessage
	}
	issue, ok := views.update(sessionID, issueByID(issueID), func(i *domain.Issue) {
		i.AddComment(text)
	})
	if !ok {
		return domain.Issue{}, domain.ErrIssueNotFound
	}
	// The view shares the comment slice with the returned copy.
	issue.Comments = clone(issue.Comments)
	return issue, nil
}
