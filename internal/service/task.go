package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"workbook_service/internal/domain"
	"workbook_service/internal/errdefs"
	"workbook_service/internal/metrics"
)

type CreateTaskInput struct {
	Title         string
	Supplementary *string
	Deadline      *string
}

type TaskService struct {
	repo     TaskRepository
	recorder metrics.Recorder
}

func NewTaskService(repo TaskRepository, recorder metrics.Recorder) *TaskService {
	return &TaskService{repo: repo, recorder: recorder}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (_ *domain.Task, err error) {
	defer observe(s.recorder, "create_task", time.Now(), &err)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errdefs.ErrValidation)
	}

	task := &domain.Task{
		UserID:        userID,
		Title:         title,
		Supplementary: input.Supplementary,
	}
	if input.Deadline != nil && strings.TrimSpace(*input.Deadline) != "" {
		deadline, err := parseDeadline(*input.Deadline)
		if err != nil {
			return nil, err
		}
		task.Deadline = &deadline
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID) (_ []*domain.Task, err error) {
	defer observe(s.recorder, "list_tasks", time.Now(), &err)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}

	tasks, err := s.repo.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.ActiveOnly(tasks), nil
}

func (s *TaskService) SetTaskCompleted(ctx context.Context, userID uuid.UUID, taskID int64, completed bool) (_ *domain.Task, err error) {
	defer observe(s.recorder, "set_task_completed", time.Now(), &err)

	task, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetTaskCompleted(ctx, taskID, completed); err != nil {
		return nil, err
	}
	task.Completed = completed
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID uuid.UUID, taskID int64) (err error) {
	defer observe(s.recorder, "delete_task", time.Now(), &err)

	if _, err := s.ownedTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.repo.TombstoneTask(ctx, taskID)
}

// ownedTask hides tasks of other users behind ErrNotFound.
func (s *TaskService) ownedTask(ctx context.Context, userID uuid.UUID, taskID int64) (*domain.Task, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is empty", errdefs.ErrUnauthorized)
	}
	if taskID == 0 {
		return nil, fmt.Errorf("%w: task id is required", errdefs.ErrValidation)
	}

	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsActive() || task.UserID != userID {
		return nil, fmt.Errorf("%w: task %d", errdefs.ErrNotFound, taskID)
	}
	return task, nil
}
