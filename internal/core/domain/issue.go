package domain

// IssueStatus is the resolution state of a reported issue.
type IssueStatus string

const (
	IssuePending    IssueStatus = "Pending"
	IssueInProgress IssueStatus = "In Progress"
	IssueCompleted  IssueStatus = "Completed"
)

// Valid reports whether s is a known status.
func (s IssueStatus) Valid() bool {
	switch s {
	case IssuePending, IssueInProgress, IssueCompleted:
		return true
	}
	return false
}

// Issue categories accepted by the report form.
var IssueCategories = []string{"Road", "Water", "Electricity", "Sanitation", "Other"}

// Issue is a sample civic issue shown on the community wall and the
// authority dashboard.
type Issue struct {
	ID           string      `json:"id" yaml:"id"`
	Category     string      `json:"type" yaml:"type"`
	Title        string      `json:"title" yaml:"title"`
	Description  string      `json:"description,omitempty" yaml:"description"`
	Location     string      `json:"location" yaml:"location"`
	Status       IssueStatus `json:"status" yaml:"status"`
	Urgency      string      `json:"urgency,omitempty" yaml:"urgency"`
	ReportedDate string      `json:"reportedDate" yaml:"reportedDate"`
	Upvotes      int         `json:"upvotes" yaml:"upvotes"`
	UserVoted    bool        `json:"userVoted" yaml:"userVoted"`
	Comments     []string    `json:"comments,omitempty" yaml:"-"`
	CommentCount int         `json:"commentCount" yaml:"comments"`
	Citizen      string      `json:"citizen,omitempty" yaml:"citizen"`
	Phone        string      `json:"phone,omitempty" yaml:"phone"`
}

// ToggleUpvote flips the caller's vote and moves the counter by one.
func (i *Issue) ToggleUpvote() {
	if i.UserVoted {
		i.UserVoted = false
		i.Upvotes--
		return
	}
	i.UserVoted = true
	i.Upvotes++
}

// AddComment appends a comment to the local view of the issue.
func (i *Issue) AddComment(text string) {
	i.Comments = append(i.Comments, text)
	i.CommentCount++
}

// IssueFilter narrows an issue list. Empty fields match everything.
type IssueFilter struct {
	Category string
	Status   string
	Urgency  string
	Date     string
}

// Match reports whether the issue passes every non-empty filter field.
func (f IssueFilter) Match(i Issue) bool {
	if f.Category != "" && i.Category != f.Category {
		return false
	}
	if f.Status != "" && string(i.Status) != f.Status {
		return false
	}
	if f.Urgency != "" && i.Urgency != f.Urgency {
		return false
	}
	if f.Date != "" && i.ReportedDate != f.Date {
		return false
	}
	return true
}

// IssueUpdate is one entry of an issue's resolution timeline.
type IssueUpdate struct {
	Date   string `json:"date" yaml:"date"`
	Status string `json:"status" yaml:"status"`
	Note   string `json:"note" yaml:"note"`
}

// TrackedIssue is the check-updates view of an issue.
type TrackedIssue struct {
	ID          string        `json:"id" yaml:"id"`
	Category    string        `json:"type" yaml:"type"`
	Location    string        `json:"location" yaml:"location"`
	Status      string        `json:"status" yaml:"status"`
	Reported    string        `json:"reportedDate" yaml:"reportedDate"`
	UpdatedDate string        `json:"updatedDate" yaml:"updatedDate"`
	Description string        `json:"description" yaml:"description"`
	Updates     []IssueUpdate `json:"updates" yaml:"updates"`
}
