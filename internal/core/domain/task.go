package domain

import "fmt"

// Task is a unit of resolution work assigned to a partner.
type Task struct {
	ID           string `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	Location     string `json:"location" yaml:"location"`
	Status       string `json:"status" yaml:"status"`
	Priority     string `json:"priority" yaml:"priority"`
	AssignedDate string `json:"assignedDate" yaml:"assignedDate"`
	Deadline     string `json:"deadline" yaml:"deadline"`
	Authority    string `json:"authority" yaml:"authority"`
	Contact      string `json:"contact" yaml:"contact"`
}

// TaskAction is a partner's response to a task.
type TaskAction string

const (
	TaskAccept   TaskAction = "accept"
	TaskDecline  TaskAction = "decline"
	TaskComplete TaskAction = "complete"
)

// ParseTaskAction validates a task action name.
func ParseTaskAction(s string) (TaskAction, error) {
	switch a := TaskAction(s); a {
	case TaskAccept, TaskDecline, TaskComplete:
		return a, nil
	}
	return "", Invalid("action", fmt.Sprintf("unknown task action %q", s))
}

// PastTense renders the action for acknowledgement messages.
func (a TaskAction) PastTense() string {
	switch a {
	case TaskAccept:
		return "accepted"
	case TaskDecline:
		return "declined"
	case TaskComplete:
		return "completed"
	}
	return string(a)
}

// AllowedFrom reports whether the action may be taken on a task in status.
// Accept and decline apply to pending tasks, complete to tasks in progress.
func (a TaskAction) AllowedFrom(status string) bool {
	switch a {
	case TaskAccept, TaskDecline:
		return status == string(IssuePending)
	case TaskComplete:
		return status == string(IssueInProgress)
	}
	return false
}
