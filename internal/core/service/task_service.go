package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskquest/task-manager/internal/core/domain"
	"github.com/taskquest/task-manager/internal/core/ports"
)

// TaskService implements ownership-scoped task CRUD. The owner id on every
// call comes from the authenticated request context; the repository filters
// by id and owner in a single predicate, so cross-user ids surface as
// ErrTaskNotFound rather than a distinguishable "forbidden".
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrInvalidInput
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		UserID:      input.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("task_id", created.ID).Int64("user_id", input.UserID).Msg("task created")
	return created, nil
}

// List returns the caller's tasks newest-created-first. A user with no
// tasks gets an empty slice, not an error.
func (s *TaskService) List(ctx context.Context, userID int64) ([]domain.Task, error) {
	tasks, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id, userID int64) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, userID)
}

func (s *TaskService) Update(ctx context.Context, id, userID int64, fields ports.UpdateTaskFields) (*domain.Task, error) {
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	if fields.Status != nil && !fields.Status.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	updated, err := s.repo.Update(ctx, id, userID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("task_id", id).Int64("user_id", userID).Msg("task updated")
	return updated, nil
}

// Delete removes the caller's task. Zero affected rows — already deleted,
// never existed, or owned by someone else — uniformly surfaces as
// ErrTaskNotFound, which is what makes delete idempotent to the caller.
func (s *TaskService) Delete(ctx context.Context, id, userID int64) error {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}

	s.logger.Info().Int64("task_id", id).Int64("user_id", userID).Msg("task deleted")
	return nil
}
