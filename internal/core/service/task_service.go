package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jaaago/civic-portal/internal/core/domain"
	"github.com/jaaago/civic-portal/internal/core/ports"
)

// TaskService serves the partner task board. Actions are acknowledged and
// never change the seeded tasks.
type TaskService struct {
	catalog ports.Catalog
	log     zerolog.Logger
}

func NewTaskService(catalog ports.Catalog, log zerolog.Logger) *TaskService {
	return &TaskService{catalog: catalog, log: log}
}

func (s *TaskService) List() []domain.Task {
	return s.catalog.Tasks()
}

func (s *TaskService) Get(taskID string) (domain.Task, error) {
	for _, t := range s.catalog.Tasks() {
		if t.ID == taskID {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

// Act acknowledges accept and decline on pending tasks and complete on
// tasks in progress.
func (s *TaskService) Act(ctx context.Context, taskID string, action domain.TaskAction) (domain.Ack, error) {
	task, err := s.Get(taskID)
	if err != nil {
		return domain.Ack{}, err
	}
	if !action.AllowedFrom(task.Status) {
		return domain.Ack{}, fmt.Errorf("%w: cannot %s a task that is %s", domain.ErrActionNotAllowed, action, task.Status)
	}

	s.log.Info().Ctx(ctx).Str("task_id", taskID).Str("action", string(action)).Msg("task action")
	return domain.Ack{Message: fmt.Sprintf("Task %s %s successfully!", taskID, action.PastTense()), ID: taskID}, nil
}

// AttachProof acknowledges a proof-of-work upload. The file is not kept.
func (s *TaskService) AttachProof(taskID, filename string) (domain.Ack, error) {
	if _, err := s.Get(taskID); err != nil {
		return domain.Ack{}, err
	}
	return domain.Ack{Message: "Proof uploaded: " + filename, ID: taskID}, nil
}

func (s *TaskService) Messages() []domain.PartnerMessage {
	return s.catalog.PartnerMessages()
}

func (s *TaskService) SendMessage(ctx context.Context, text string) (domain.Ack, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Ack{}, domain.ErrEmptyMessage
	}
	s.log.Debug().Ctx(ctx).Msg("partner message sent")
	return domain.Ack{Message: "Message sent: " + text}, nil
}
