package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// IssueService handles citizen reports and the authority's issue board.
// Nothing here is persisted: reports are acknowledged and board changes
// live in the session's view.
type IssueService struct {
	catalog ports.Catalog
	views   *viewStore[domain.Issue]
	now     func() time.Time
	log     zerolog.Logger
}

func NewIssueService(catalog ports.Catalog, log zerolog.Logger) *IssueService {
	return &IssueService{
		catalog: catalog,
		views:   newViewStore(catalog.AuthorityIssues),
		now:     time.Now,
		log:     log,
	}
}

// Report acknowledges a new issue with an id derived from the clock.
func (s *IssueService) Report(ctx context.Context, in ports.IssueReport) (domain.Ack, error) {
	if !knownCategory(in.Category) {
		return domain.Ack{}, domain.Invalid("issueType", "Please select a valid issue type.")
	}
	if strings.TrimSpace(in.Location) == "" {
		return domain.Ack{}, domain.Invalid("location", "Location is required.")
	}
	if strings.TrimSpace(in.Description) == "" {
		return domain.Ack{}, domain.Invalid("description", "Description is required.")
	}

	id := fmt.Sprintf("#JAG%06d", s.now().UnixMilli()%1_000_000)
	s.log.Info().Ctx(ctx).Str("issue_id", id).Str("category", in.Category).Msg("issue reported")
	return domain.Ack{Message: "Issue reported successfully! Issue ID: " + id, ID: id}, nil
}

// Track returns the resolution timeline for issueID. The sample timeline is
// served for every lookup.
func (s *IssueService) Track(issueID, _ string) domain.TrackedIssue {
	tracked := s.catalog.TrackedIssue()
	if id := strings.TrimSpace(issueID); id != "" {
		tracked.ID = id
	}
	return tracked
}

func (s *IssueService) Open(sessionID string, filter domain.IssueFilter) []domain.Issue {
	return filterIssues(s.views.reset(sessionID), filter)
}

func (s *IssueService) Get(sessionID, issueID string) (domain.Issue, error) {
	issue, ok := s.views.find(sessionID, issueByID(issueID))
	if !ok {
		return domain.Issue{}, domain.ErrIssueNotFound
	}
	issue.Comments = clone(issue.Comments)
	return issue, nil
}

func (s *IssueService) UpdateStatus(sessionID, issueID string, status domain.IssueStatus) (domain.Issue, domain.Ack, error) {
	if !status.Valid() {
		return domain.Issue{}, domain.Ack{}, domain.Invalid("status", fmt.Sprintf("unknown status %q", status))
	}
	issue, ok := s.views.update(sessionID, issueByID(issueID), func(i *domain.Issue) {
		i.Status = status
	})
	if !ok {
		return domain.Issue{}, domain.Ack{}, domain.ErrIssueNotFound
	}
	issue.Comments = clone(issue.Comments)
	return issue, domain.Ack{Message: fmt.Sprintf("Issue %s status updated to: %s", issueID, status), ID: issueID}, nil
}

func (s *IssueService) Comment(sessionID, issueID, text string) (domain.Issue, error) {
	return commentOn(s.views, sessionID, issueID, text)
}

// AttachResolution acknowledges a resolution image. The file is not kept.
func (s *IssueService) AttachResolution(issueID, filename string) (domain.Ack, error) {
	if !s.known(issueID) {
		return domain.Ack{}, domain.ErrIssueNotFound
	}
	return domain.Ack{Message: "Resolution image uploaded: " + filename, ID: issueID}, nil
}

func (s *IssueService) known(issueID string) bool {
	for _, i := range s.catalog.AuthorityIssues() {
		if i.ID == issueID {
			return true
		}
	}
	return false
}

func knownCategory(c string) bool {
	for _, known := range domain.IssueCategories {
		if c == known {
			return true
		}
	}
	return false
}
